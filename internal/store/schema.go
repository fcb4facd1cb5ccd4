package store

// schemaVersionV1 is the current schema version.
const schemaVersionV1 = 1

const schemaV1 = `
CREATE TABLE schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at  TEXT NOT NULL,
	finished_at TEXT,
	status      TEXT NOT NULL,
	dataset     TEXT NOT NULL,
	renderer    TEXT NOT NULL,
	report_path TEXT NOT NULL
);

CREATE TABLE results (
	run_id   INTEGER NOT NULL REFERENCES runs(id),
	repo     TEXT NOT NULL,
	filepath TEXT NOT NULL,
	style    TEXT NOT NULL,

	misdetection               INTEGER NOT NULL,
	undetected                 INTEGER NOT NULL,
	detected_bad_change        INTEGER NOT NULL,
	detected_good_change       INTEGER NOT NULL,
	local_misdetection         INTEGER NOT NULL,
	local_undetected           INTEGER NOT NULL,
	local_detected_bad_change  INTEGER NOT NULL,
	local_detected_good_change INTEGER NOT NULL
);

CREATE INDEX idx_results_run ON results(run_id);
`
