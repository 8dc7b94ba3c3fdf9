package ops

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Manifest maps archive-relative paths to sha256 hex digests.
type Manifest map[string]string

// ManifestOf walks a directory and fingerprints every regular file.
func ManifestOf(dir string) (Manifest, error) {
	m := make(Manifest)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		h := sha256.New()
		if _, err := io.Copy(h, f); err != nil {
			return err
		}
		m[filepath.ToSlash(rel)] = hex.EncodeToString(h.Sum(nil))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Diff reports paths whose digests differ between the two manifests,
// including paths present on only one side. Sorted for stable output.
func (m Manifest) Diff(other Manifest) []string {
	var out []string
	for path, sum := range m {
		if other[path] != sum {
			out = append(out, path)
		}
	}
	for path := range other {
		if _, ok := m[path]; !ok {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out
}

// VerifyRestore proves a backup archive round-trips: the restored tree
// must fingerprint identically to the source directory.
func VerifyRestore(srcDir, restoredDir string) error {
	want, err := ManifestOf(srcDir)
	if err != nil {
		return fmt.Errorf("manifest source: %w", err)
	}
	got, err := ManifestOf(restoredDir)
	if err != nil {
		return fmt.Errorf("manifest restored: %w", err)
	}
	if diff := want.Diff(got); len(diff) > 0 {
		return fmt.Errorf("restore mismatch: %v", diff)
	}
	return nil
}
