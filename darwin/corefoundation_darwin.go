package darwin

/*
#cgo CFLAGS: -mmacosx-version-min=10.9
#cgo LDFLAGS: -framework CoreFoundation -framework CoreServices

#include <CoreFoundation/CoreFoundation.h>

#include <limits.h>
#include <stdlib.h>
#include <string.h>

enum {
	fnd_ok = 0,
	fnd_invalid_path,
	fnd_lookup_failed,
	fnd_bookmark_failed,
	fnd_resolve_failed,
	fnd_encode_failed,
	fnd_write_failed,
};

// fnd_describe releases err, copying its description into *desc first.
static void fnd_describe(CFErrorRef err, char **desc) {
	if (err == NULL) {
		return;
	}
	CFStringRef s = CFErrorCopyDescription(err);
	if (s != NULL) {
		CFIndex n = CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
		char *buf = malloc(n);
		if (buf != NULL && CFStringGetCString(s, buf, n, kCFStringEncodingUTF8)) {
			*desc = buf;
		} else {
			free(buf);
		}
		CFRelease(s);
	}
	CFRelease(err);
}

static CFURLRef fnd_url(const char *path, Boolean isDir) {
	return CFURLCreateFromFileSystemRepresentation(NULL, (const UInt8 *)path, strlen(path), isDir);
}

static int fnd_is_alias(const char *path, int *isAlias, char **desc) {
	CFURLRef url = fnd_url(path, false);
	if (url == NULL) {
		return fnd_invalid_path;
	}

	CFBooleanRef value = NULL;
	CFErrorRef err = NULL;
	Boolean ok = CFURLCopyResourcePropertyForKey(url, kCFURLIsAliasFileKey, &value, &err);
	CFRelease(url);
	if (!ok) {
		fnd_describe(err, desc);
		return fnd_lookup_failed;
	}

	*isAlias = value != NULL && CFBooleanGetValue(value);
	if (value != NULL) {
		CFRelease(value);
	}
	return fnd_ok;
}

static int fnd_resolve_alias(const char *path, unsigned long options, char **target, int *stale, char **desc) {
	CFURLRef url = fnd_url(path, false);
	if (url == NULL) {
		return fnd_invalid_path;
	}

	CFErrorRef err = NULL;
	CFDataRef bookmark = CFURLCreateBookmarkDataFromFile(NULL, url, &err);
	CFRelease(url);
	if (bookmark == NULL) {
		fnd_describe(err, desc);
		return fnd_bookmark_failed;
	}

	Boolean isStale = false;
	err = NULL;
	CFURLRef resolved = CFURLCreateByResolvingBookmarkData(NULL, bookmark,
		(CFURLBookmarkResolutionOptions)options, NULL, NULL, &isStale, &err);
	CFRelease(bookmark);
	if (resolved == NULL) {
		fnd_describe(err, desc);
		return fnd_resolve_failed;
	}
	*stale = isStale;

	UInt8 buf[PATH_MAX];
	Boolean ok = CFURLGetFileSystemRepresentation(resolved, true, buf, PATH_MAX);
	CFRelease(resolved);
	if (!ok) {
		return fnd_encode_failed;
	}

	*target = strdup((const char *)buf);
	if (*target == NULL) {
		return fnd_encode_failed;
	}
	return fnd_ok;
}

static int fnd_write_alias(const char *target, int targetIsDir, const char *dst, unsigned long options, char **desc) {
	CFURLRef targetURL = fnd_url(target, targetIsDir);
	if (targetURL == NULL) {
		return fnd_invalid_path;
	}
	CFURLRef dstURL = fnd_url(dst, false);
	if (dstURL == NULL) {
		CFRelease(targetURL);
		return fnd_invalid_path;
	}

	CFErrorRef err = NULL;
	CFDataRef bookmark = CFURLCreateBookmarkData(NULL, targetURL,
		(CFURLBookmarkCreationOptions)options, NULL, NULL, &err);
	CFRelease(targetURL);
	if (bookmark == NULL) {
		CFRelease(dstURL);
		fnd_describe(err, desc);
		return fnd_bookmark_failed;
	}

	err = NULL;
	Boolean ok = CFURLWriteBookmarkDataToFile(bookmark, dstURL, 0, &err);
	CFRelease(bookmark);
	CFRelease(dstURL);
	if (!ok) {
		fnd_describe(err, desc);
		return fnd_write_failed;
	}
	return fnd_ok;
}
*/
import "C"

import (
	"strings"
	"unsafe"
)

// IsAliasFile asks the host if path is an alias file (kCFURLIsAliasFileKey).
// The host also answers true for symbolic links.
func IsAliasFile(path string) (bool, error) {
	if strings.IndexByte(path, 0) >= 0 {
		return false, &HostError{Op: "is alias", Status: StatusInvalidPath}
	}
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var isAlias C.int
	var desc *C.char
	if rc := C.fnd_is_alias(cPath, &isAlias, &desc); rc != C.fnd_ok {
		return false, hostError("is alias", rc, desc)
	}
	return isAlias != 0, nil
}

// ResolveAliasFile reads the bookmark stored in the alias file at path and
// resolves it with the passed BookmarkResolution options. stale is set when
// the host had to relocate the target.
func ResolveAliasFile(path string, options uint) (target string, stale bool, err error) {
	if strings.IndexByte(path, 0) >= 0 {
		return "", false, &HostError{Op: "resolve alias", Status: StatusInvalidPath}
	}
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var cTarget *C.char
	var cStale C.int
	var desc *C.char
	if rc := C.fnd_resolve_alias(cPath, C.ulong(options), &cTarget, &cStale, &desc); rc != C.fnd_ok {
		return "", false, hostError("resolve alias", rc, desc)
	}
	defer C.free(unsafe.Pointer(cTarget))

	return C.GoString(cTarget), cStale != 0, nil
}

// WriteAliasFile creates bookmark data for target with the passed
// BookmarkCreation options and writes it to dst.
func WriteAliasFile(target string, targetIsDir bool, dst string, options uint) error {
	if strings.IndexByte(target, 0) >= 0 || strings.IndexByte(dst, 0) >= 0 {
		return &HostError{Op: "write alias", Status: StatusInvalidPath}
	}
	cTarget := C.CString(target)
	defer C.free(unsafe.Pointer(cTarget))
	cDst := C.CString(dst)
	defer C.free(unsafe.Pointer(cDst))

	var isDir C.int
	if targetIsDir {
		isDir = 1
	}
	var desc *C.char
	if rc := C.fnd_write_alias(cTarget, isDir, cDst, C.ulong(options), &desc); rc != C.fnd_ok {
		return hostError("write alias", rc, desc)
	}
	return nil
}

// hostError converts a bridge status into a *HostError and frees desc.
func hostError(op string, rc C.int, desc *C.char) error {
	e := &HostError{Op: op, Status: Status(rc)}
	if desc != nil {
		e.Description = C.GoString(desc)
		C.free(unsafe.Pointer(desc))
	}
	return e
}
