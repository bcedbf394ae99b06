package exchange

import (
	"github.com/cheggaaa/pb/v3"
)

// ProgressBar wraps github.com/cheggaaa/pb/v3 into a ProgressFunc
// suitable for ExportLearned/ExportFull's progress_cb parameter,
// rendering a live terminal bar labeled prefix.
func ProgressBar(prefix string, total int) (ProgressFunc, func()) {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)

	return func(_, processed int, _ string) {
			bar.SetCurrent(int64(processed))
		}, func() {
			bar.Finish()
		}
}
