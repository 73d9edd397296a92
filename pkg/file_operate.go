package pkg

import (
	"errors"
	"os"
)

// ErrPathIsDirectory is returned when a path expected to name a config file
// points at a directory.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	stat, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if stat.IsDir() {
		return false, ErrPathIsDirectory
	}
	return true, nil
}
