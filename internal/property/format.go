package property

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/zackbart/browse/internal/locale"
)

// Format renders s as the lines of the property overlay. The first line is
// the overlay title and the second is blank.
func Format(s *Snapshot, tr *locale.Translator) []string {
	lines := []string{tr.T(locale.Properties), ""}
	if s == nil {
		return append(lines, tr.T(locale.NoProperties))
	}

	access := tr.T(locale.No)
	if s.Accessible {
		access = tr.T(locale.Yes)
	}

	mime := s.MIME
	if mime == "" {
		mime = tr.T(locale.Unavailable)
	}

	return append(lines,
		tr.T(locale.Name)+s.Name,
		tr.T(locale.Location)+s.Location,
		tr.T(locale.Size)+fmt.Sprintf("%d (%s)", s.Size, humanize.Bytes(uint64(s.Size))),
		tr.T(locale.Type)+mime,
		tr.T(locale.Access)+access,
		tr.T(locale.Created)+formatTime(s.Created, tr),
		tr.T(locale.Modified)+formatTime(s.Modified, tr),
		tr.T(locale.Accessed)+formatTime(s.Accessed, tr),
	)
}

func formatTime(ts Timestamp, tr *locale.Translator) string {
	if !ts.Available() {
		return tr.T(locale.Unavailable)
	}
	return ts.At.Format(tr.T(locale.TimeLayout))
}
