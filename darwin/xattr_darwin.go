package darwin

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/pkg/xattr"
)

// ReadFinderInfo returns the Finder information attached to path. Symlinks
// are not followed. A file without Finder information yields a zero FileInfo.
func ReadFinderInfo(path string) (FileInfo, error) {
	data, err := xattr.LGet(path, FinderInfoAttr)
	if err != nil {
		if errors.Is(err, xattr.ENOATTR) {
			return FileInfo{}, nil
		}
		return FileInfo{}, err
	}
	return ParseFinderInfo(data)
}

// HasAliasFlag reports if the Finder flags of path mark it as an alias.
func HasAliasFlag(path string) (bool, error) {
	fi, err := ReadFinderInfo(path)
	if err != nil {
		return false, err
	}
	return fi.IsAlias(), nil
}

// SetAsAlias flags the destination file as an alias.
// This function doesn't verify that the file is actually an alias.
// Don't use on the wrong file!
func SetAsAlias(path string, folder bool) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%s can't be converted to an absolute path: %w", path, err)
	}
	absPath = filepath.Clean(absPath)

	fi, err := ReadFinderInfo(absPath)
	if err != nil {
		return fmt.Errorf("failed to read the finder info of %s: %w", absPath, err)
	}
	if fi.FileType == 0 {
		fi.FileType = AliasFileType
		if folder {
			fi.FileType = FolderAliasFileType
		}
		fi.FileCreator = FinderCreator
	}
	fi.FinderFlags |= FFKIsAlias
	return xattr.LSet(absPath, FinderInfoAttr, fi.Bytes())
}
