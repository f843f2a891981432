package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

const (
	styleSheet = "style.css"
	assetsDir  = "assets"
)

// copyAssets copies the style sheet and the assets tree of src into dest,
// running at most workers copies at once. Missing assets are skipped.
func copyAssets(ctx context.Context, src fs.FS, dest string, workers int) error {
	var files []string
	if _, err := fs.Stat(src, styleSheet); err == nil {
		files = append(files, styleSheet)
	}
	err := fs.WalkDir(src, assetsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("listing assets: %w", err)
	}

	if workers <= 0 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return copyFile(src, name, filepath.Join(dest, filepath.FromSlash(name)))
		})
	}
	return g.Wait()
}

func copyFile(src fs.FS, name, dest string) error {
	in, err := src.Open(name)
	if err != nil {
		return fmt.Errorf("opening asset %s: %w", name, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating asset directory: %w", err)
	}
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", name, err)
	}
	return out.Close()
}
