package worker

import (
	"bytes"
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/querycatalog"
)

type IndexVerifier interface {
	Verify(ctx context.Context) querycatalog.Report
}

// VerifyIndexesHandler runs the catalog check and logs the report. A missing
// index is an operator concern, so the task itself never fails on one.
func VerifyIndexesHandler(ctx context.Context, v IndexVerifier) error {
	report := v.Verify(ctx)

	var buf bytes.Buffer
	if err := report.Print(&buf); err != nil {
		return err
	}

	if report.OK() {
		logger.Infof(ctx, "✅  Composite query catalog ready\n%s", buf.String())
		return nil
	}
	logger.Warnf(ctx, "⚠️  Composite query catalog needs attention\n%s", buf.String())
	return nil
}
