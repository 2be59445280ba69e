package darwin

// FinderInfoAttr is the extended attribute holding the 32 bytes of Finder
// information (a FileInfo followed by an ExtendedFileInfo).
const FinderInfoAttr = "com.apple.FinderInfo"

// FinderInfoSize is the size of the com.apple.FinderInfo attribute.
const FinderInfoSize = 32

// Finder flags (from Finder.h)
const (
	FFKIsOnDesk      uint16 = 0x0001
	FFKColor         uint16 = 0x000E
	FFKIsShared      uint16 = 0x0040
	FFKHasNoINITs    uint16 = 0x0080
	FFKHasBeenInited uint16 = 0x0100
	FFKHasCustomIcon uint16 = 0x0400
	FFKIsStationery  uint16 = 0x0800
	FFKNameLocked    uint16 = 0x1000
	FFKHasBundle     uint16 = 0x2000
	FFKIsInvisible   uint16 = 0x4000
	FFKIsAlias       uint16 = 0x8000
)

// OSType codes stored in FileInfo.FileType and FileInfo.FileCreator.
const (
	// "alis"
	AliasFileType uint32 = 0x616c6973
	// "fdrp", used for aliases pointing to folders
	FolderAliasFileType uint32 = 0x66647270
	// "MACS"
	FinderCreator uint32 = 0x4d414353
)

// Bookmark creation and resolution options (from CFURL.h)
const (
	BookmarkCreationMinimalBookmark         uint = 1 << 9
	BookmarkCreationSuitableForBookmarkFile uint = 1 << 10

	BookmarkResolutionWithoutUI       uint = 1 << 8
	BookmarkResolutionWithoutMounting uint = 1 << 9
)
