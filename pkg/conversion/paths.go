package conversion

import (
	"path"
	"strings"

	"github.com/arthur-debert/shrinkwrap/pkg/codec"
)

// All candidate math works on slash-separated paths relative to the run's
// base directory, so lock files stay portable across platforms.

// BackupPath mirrors the candidate's sub-path under the input root into the
// output root: assets/icons/logo.png with input "assets" and output "backup"
// becomes backup/icons/logo.png.
func BackupPath(candidate, inputDir, outputDir string) string {
	rel, ok := RelToDir(candidate, inputDir)
	if !ok {
		// Candidates are discovered under the input root, so this only
		// happens with hand-edited lock entries; fall back to the base name.
		rel = path.Base(candidate)
	}
	return path.Join(path.Clean(toSlash(outputDir)), rel)
}

// FinalPath is the converted file's path: the candidate's own directory plus
// its base name with the target format's extension.
func FinalPath(candidate string, format codec.Format) string {
	dir := path.Dir(candidate)
	base := strings.TrimSuffix(path.Base(candidate), path.Ext(candidate))
	return path.Join(dir, base+format.Extension())
}

// TempPath is where the encoder writes before the original has been safely
// backed up.
func TempPath(candidate string) string {
	return candidate + ".temp"
}

// RelToDir rewrites p relative to dir. It reports false when p does not live
// under dir.
func RelToDir(p, dir string) (string, bool) {
	dir = path.Clean(toSlash(dir))
	if dir == "." {
		return p, true
	}
	if p == dir {
		return ".", true
	}
	if strings.HasPrefix(p, dir+"/") {
		return p[len(dir)+1:], true
	}
	return p, false
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
