package wiring

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"styleval/internal/render"
	"styleval/internal/report"
	"styleval/internal/store"
)

var _ = ginkgo.Describe("Evaluation run", func() {
	ginkgo.It("writes the report, dumps the texts and records the run", func() {
		dir := ginkgo.GinkgoT().TempDir()

		res, err := Run(context.Background(), "demo-style", render.Stub{}, 2, dir)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(res.Rows).NotTo(gomega.BeEmpty())

		// report.csv round-trips with the fixed header.
		data, err := os.ReadFile(res.ReportPath)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(string(data)).To(gomega.HavePrefix(strings.Join(report.Columns, ",") + "\r\n"))

		rows, err := report.ReadReport(res.ReportPath)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(rows).To(gomega.HaveLen(len(res.Rows)))

		// One dump per payload column per row.
		entries, err := os.ReadDir(filepath.Join(dir, report.FilesDir))
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(entries).To(gomega.HaveLen(len(res.Rows) * 6))

		// The run store agrees with the report.
		st, err := store.Open(res.DBPath)
		gomega.Expect(err).To(gomega.Succeed())
		defer st.Close()
		runs, err := st.ListRuns()
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(runs).To(gomega.HaveLen(1))
		gomega.Expect(runs[0].Status).To(gomega.Equal(store.StatusDone))
		results, err := st.Results(res.RunID)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(results).To(gomega.HaveLen(len(res.Rows)))
	})

	ginkgo.It("scores the stub as all undetected", func() {
		dir := ginkgo.GinkgoT().TempDir()

		res, err := Run(context.Background(), "demo-style", render.Stub{}, 1, dir)
		gomega.Expect(err).To(gomega.Succeed())

		for _, row := range res.Rows {
			gomega.Expect(row.Global.Misdetection).To(gomega.BeZero(), row.Path)
			gomega.Expect(row.Global.DetectedGoodChange).To(gomega.BeZero(), row.Path)
			gomega.Expect(row.Global.DetectedBadChange).To(gomega.BeZero(), row.Path)
			gomega.Expect(row.Global.Undetected).To(gomega.BeNumerically(">", 0), row.Path)
			gomega.Expect(row.Local).To(gomega.Equal(row.Global), row.Path)
		}
	})

	ginkgo.It("scores the oracle as all detected good changes", func() {
		dir := ginkgo.GinkgoT().TempDir()

		res, err := Run(context.Background(), "demo-style", render.Oracle{}, 1, dir)
		gomega.Expect(err).To(gomega.Succeed())

		for _, row := range res.Rows {
			gomega.Expect(row.Global.Misdetection).To(gomega.BeZero(), row.Path)
			gomega.Expect(row.Global.Undetected).To(gomega.BeZero(), row.Path)
			gomega.Expect(row.Global.DetectedBadChange).To(gomega.BeZero(), row.Path)
			gomega.Expect(row.Global.DetectedGoodChange).To(gomega.BeNumerically(">", 0), row.Path)
		}
	})

	ginkgo.It("keeps two runs fully isolated", func() {
		dir := ginkgo.GinkgoT().TempDir()

		first, err := Run(context.Background(), "demo-style", render.Stub{}, 1, filepath.Join(dir, "first"))
		gomega.Expect(err).To(gomega.Succeed())
		second, err := Run(context.Background(), "demo-style", render.Oracle{}, 1, filepath.Join(dir, "second"))
		gomega.Expect(err).To(gomega.Succeed())

		// Separate stores, one run each: no shared accumulation anywhere.
		st, err := store.Open(first.DBPath)
		gomega.Expect(err).To(gomega.Succeed())
		defer st.Close()
		runs, err := st.ListRuns()
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(runs).To(gomega.HaveLen(1))

		st2, err := store.Open(second.DBPath)
		gomega.Expect(err).To(gomega.Succeed())
		defer st2.Close()
		runs2, err := st2.ListRuns()
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(runs2).To(gomega.HaveLen(1))
	})
})
