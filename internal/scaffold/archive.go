package scaffold

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
)

// Archive walks root and writes every regular file into a deflated zip on w,
// named by its slash-separated path relative to root. Empty directories are not recorded.
func Archive(root string, w io.Writer) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		return addFile(zw, path, filepath.ToSlash(rel), d)
	})
	if err != nil {
		_ = zw.Close()
		return fmt.Errorf("archive %s: %w", root, err)
	}
	return zw.Close()
}

func addFile(zw *zip.Writer, path, name string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(dst, src)
	return err
}

// Bundle is a finished archive ready to hand to a client.
type Bundle struct {
	Filename string
	Data     []byte
}

// Build materializes cfg inside a fresh scratch directory under scratchRoot,
// archives it and removes the scratch directory before returning, on success or failure.
func Build(cfg domain.ProjectConfig, plan, scratchRoot string) (b *Bundle, err error) {
	scratch, err := AcquireScratch(scratchRoot)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := scratch.Release(); rerr != nil && err == nil {
			err = fmt.Errorf("release scratch: %w", rerr)
			b = nil
		}
	}()

	name := domain.SanitizeRepoName(cfg.RepoName)
	projectDir := filepath.Join(scratch.Dir, name)
	if err := Materialize(cfg, projectDir, plan); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := Archive(projectDir, &buf); err != nil {
		return nil, err
	}
	return &Bundle{Filename: name + ".zip", Data: buf.Bytes()}, nil
}
