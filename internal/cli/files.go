package cli

import (
	"os"

	"github.com/zeebo/errs"
)

// create calls fn with a new file at path and closes it.
func create(path string, fn func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errs.Combine(err, f.Close())
	}()

	return fn(f)
}
