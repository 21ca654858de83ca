package edid

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"edid-forge/edid/eres"
	"edid-forge/edid/ehex"
	"edid-forge/logger"
)

// OutputPath is <outputDir>/<resolution>/<relativePath with a .bin extension>.
func OutputPath(outputDir string, resolution string, relativePath string) string {
	ext := filepath.Ext(relativePath)
	if ext == filepath.Base(relativePath) || ext == "." {
		// dot files such as ".edid" and a bare trailing dot are not extensions
		ext = ""
	}
	return filepath.Join(outputDir, resolution, strings.TrimSuffix(relativePath, ext)+OutputExtension)
}

// ConvertFile ingests the hex dump at path and writes its binary form under
// outputDir, classified by resolution.
func ConvertFile(path string, relativePath string, outputDir string) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	bs, err := ehex.Ingest(f)
	if err != nil {
		return "", "", errors.Wrapf(err, "ingest %s", path)
	}
	resolution := eres.InferResolution(bs)
	output := OutputPath(outputDir, resolution, relativePath)
	if err := WriteFile(output, bs); err != nil {
		return "", "", err
	}
	return resolution, output, nil
}

// ConvertDirectory converts every regular file under inputDir. Failures of
// single files are logged and listed in the report; only a missing input
// directory or a failing walk is returned as an error.
func ConvertDirectory(inputDir string, outputDir string) (*Report, error) {
	inputDir, err := filepath.Abs(inputDir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", inputDir)
	}
	outputDir, err = filepath.Abs(outputDir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", outputDir)
	}
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, errors.Wrapf(err, "not found: %s", inputDir)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("not a directory: %s", inputDir)
	}

	log := logger.L.With("run", uuid.NewString())
	log.Info("converting", "input", inputDir, "output", outputDir)

	report := NewReport()
	walkErr := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == outputDir && path != inputDir {
				log.Debug("skipping output directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if !isRegularFile(path, d) {
			return nil
		}
		relativePath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}

		resolution, output, err := ConvertFile(path, relativePath, outputDir)
		if err != nil {
			log.Error("exception", "file", relativePath, "error", err)
			report.Failed = append(report.Failed, relativePath)
			return nil
		}
		log.Info("processed", "file", relativePath, "resolution", resolution, "output", output)
		report.Processed++
		report.Resolutions.Upsert(resolution, func(files []string) []string {
			return append(files, relativePath)
		})
		return nil
	})
	if walkErr != nil {
		return report, errors.Wrapf(walkErr, "walk %s", inputDir)
	}

	log.Info("done", "processed", report.Processed, "failed", len(report.Failed))
	return report, nil
}

// isRegularFile follows symbolic links.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
