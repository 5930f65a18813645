package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"git.sr.ht/~mariusor/lw"
	"github.com/urfave/cli"

	"github.com/danielkim-905/schedule-planner/storage"
	"github.com/danielkim-905/schedule-planner/storage/boltdb"
)

type repository interface {
	storage.Saver
	storage.Loader
	storage.Clearer
}

var now = time.Now()

const (
	AppName    = "planner"
	AppVersion = "(unknown)"
)

var (
	logger = lw.Dev()
	info   = logger.Infof
	errFn  = logger.Errorf
)

func MkDirIfNotExists(p string) error {
	fi, err := os.Stat(p)
	if err != nil && os.IsNotExist(err) {
		err = os.MkdirAll(p, os.ModeDir|os.ModePerm|0700)
	}
	if err != nil {
		return err
	}
	fi, err = os.Stat(p)
	if err != nil {
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("path exists, and is not a folder %s", p)
	}
	return nil
}

func DataPath() string {
	homeDir, _ := os.UserHomeDir()
	xdgDataPath := filepath.Join(homeDir, ".local", "share")
	appPath := filepath.Join(xdgDataPath, AppName)

	if _, err := os.Stat(appPath); err != nil && errors.Is(err, os.ErrNotExist) {
		err := MkDirIfNotExists(appPath)
		if err != nil {
			log.Fatalf("Error: %s", err.Error())
		}
	}
	return appPath
}

func DbPath(c *cli.Context) string {
	return filepath.Join(c.GlobalString("path"), boltdb.DefaultFile)
}

func repo(c *cli.Context) repository {
	return boltdb.New(boltdb.Config{
		Path:  DbPath(c),
		LogFn: info,
		ErrFn: errFn,
	})
}
