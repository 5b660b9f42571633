// Package archive packs the deployed build output into compressed tarballs.
package archive

import (
	"archive/tar"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/rotisserie/eris"
	"github.com/ulikunitz/xz"

	"github.com/voxium/voxium/tools/pkg/logging"
)

// Extensions lists the supported archive suffixes.
var Extensions = []string{".tar.xz", ".tar.br", ".tar"}

// Supported reports whether Pack can write an archive named dest.
func Supported(dest string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(dest, ext) {
			return true
		}
	}
	return false
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func compressor(dest string, w io.Writer) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(dest, ".tar.xz"):
		return xz.NewWriter(w)
	case strings.HasSuffix(dest, ".tar.br"):
		return brotli.NewWriterLevel(w, brotli.BestCompression), nil
	case strings.HasSuffix(dest, ".tar"):
		return nopCloser{w}, nil
	}

	return nil, eris.Errorf("Archive format not supported: %s", filepath.Base(dest))
}

// Pack writes every file below src into the archive dest. The compression is picked from the
// extension of dest. It returns the number of packed files.
func Pack(ctx context.Context, src, dest string) (int, error) {
	log := logging.Log(ctx)

	if !Supported(dest) {
		return 0, eris.Errorf("Archive format not supported: %s", filepath.Base(dest))
	}

	info, err := os.Stat(src)
	if err != nil {
		return 0, eris.Wrapf(err, "Failed to open %s", src)
	}
	if !info.IsDir() {
		return 0, eris.Errorf("%s is not a directory", src)
	}

	hdl, err := os.Create(dest)
	if err != nil {
		return 0, eris.Wrapf(err, "Failed to create %s", dest)
	}
	defer hdl.Close()

	cw, err := compressor(dest, hdl)
	if err != nil {
		return 0, err
	}

	archive := tar.NewWriter(cw)
	buf := make([]byte, 32*1024)
	count := 0

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == src {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		fi, err := d.Info()
		if err != nil {
			return eris.Wrapf(err, "Failed to stat %s", path)
		}

		link := ""
		if fi.Mode()&os.ModeSymlink != 0 {
			link, err = os.Readlink(path)
			if err != nil {
				return eris.Wrapf(err, "Failed to read link %s", path)
			}
		}

		header, err := tar.FileInfoHeader(fi, link)
		if err != nil {
			return eris.Wrapf(err, "Failed to build header for %s", path)
		}
		header.Name = filepath.ToSlash(rel)
		if fi.IsDir() {
			header.Name += "/"
		}

		if err := archive.WriteHeader(header); err != nil {
			return eris.Wrapf(err, "Failed to write header for %s", path)
		}

		if !fi.Mode().IsRegular() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return eris.Wrapf(err, "Failed to open %s", path)
		}
		defer f.Close()

		if _, err := io.CopyBuffer(archive, f, buf); err != nil {
			return eris.Wrapf(err, "Failed to pack %s", path)
		}

		count++
		log.Debug().Msgf("Packed %s", header.Name)
		return nil
	})
	if err != nil {
		return count, err
	}

	if err := archive.Close(); err != nil {
		return count, eris.Wrap(err, "Failed to finish the tar stream")
	}
	if err := cw.Close(); err != nil {
		return count, eris.Wrap(err, "Failed to finish compression")
	}
	if err := hdl.Close(); err != nil {
		return count, eris.Wrapf(err, "Failed to close %s", dest)
	}

	log.Info().Msgf("Packed %d files into %s", count, dest)
	return count, nil
}
