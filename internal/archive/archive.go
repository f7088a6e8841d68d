package archive

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/nbox/ProductHunt-Statistic/internal/constants"
)

// NoReports is returned when no year directories exist at all.
const NoReports = "_No reports yet._"

// BuildNav renders nested collapsible navigation over the YYYY/MM/*.md
// report tree, newest first at every level. It is a pure function of the
// filesystem snapshot; scanning problems degrade to empty groups rather
// than errors.
func BuildNav(fsys fs.FS) string {
	years := listDirs(fsys, ".", 4)
	if len(years) == 0 {
		return NoReports
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))

	var lines []string
	for _, year := range years {
		months := listDirs(fsys, year, 2)
		sort.Sort(sort.Reverse(sort.StringSlice(months)))

		lines = append(lines, "<details>")
		lines = append(lines, fmt.Sprintf("<summary>%s</summary>\n", year))

		if len(months) == 0 {
			lines = append(lines, "_Empty_\n", "</details>\n")
			continue
		}

		for _, month := range months {
			files := listReports(fsys, year+"/"+month)
			sort.SliceStable(files, func(i, j int) bool {
				return reportDate(files[i]).After(reportDate(files[j]))
			})

			lines = append(lines, "  <details>")
			lines = append(lines, fmt.Sprintf("  <summary>%s</summary>\n", month))

			if len(files) == 0 {
				lines = append(lines, "  _Empty_\n", "  </details>\n")
				continue
			}

			for _, name := range files {
				title := strings.TrimSuffix(name, constants.ReportExt)
				lines = append(lines, fmt.Sprintf("  - [%s](%s/%s/%s)", title, year, month, name))
			}

			lines = append(lines, "\n  </details>\n")
		}

		lines = append(lines, "</details>\n")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}

// listDirs returns immediate subdirectories of dir whose names are exactly
// width digits.
func listDirs(fsys fs.FS, dir string, width int) []string {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() && isDigits(e.Name(), width) {
			out = append(out, e.Name())
		}
	}
	return out
}

func listReports(fsys fs.FS, dir string) []string {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), constants.ReportExt) {
			out = append(out, e.Name())
		}
	}
	return out
}

// reportDate parses the DD-MM-YYYY filename stem. Anything unparseable,
// including calendar-invalid dates, sorts as the oldest possible date.
func reportDate(name string) time.Time {
	base := strings.TrimSuffix(name, constants.ReportExt)
	t, err := time.Parse("02-01-2006", base)
	if err != nil {
		return time.Time{}
	}
	return t
}

func isDigits(s string, width int) bool {
	if len(s) != width {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
