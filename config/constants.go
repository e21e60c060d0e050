package config

// Default memory offsets, relative to the game module base unless noted.
// They match DEFAULT_GAME_VERSION; other builds need an offsets profile.
const (
	DEFAULT_GAME_VERSION = "2023.11.09.0000.0000"

	PTR_OBJECT_TABLE  = 0x21A6A10
	OBJECT_TABLE_SIZE = 599
	PTR_PARTY_LIST    = 0x21AB5E0
	PARTY_MEMBER_SIZE = 0x230
	PARTY_MAX_MEMBERS = 8
	OFF_PARTY_COUNT   = 0x22D0
	OFF_PARTY_OBJID   = 0x1A8
	PTR_TERRITORY     = 0x21B3B18
	PTR_MAP_ID        = 0x21B3B1C
	PTR_ATK_STAGE     = 0x21D2C68

	// relative to the AtkStage singleton
	OFF_ATK_ARRAY_HOLDER = 0x38
	OFF_NUMBER_ARRAYS    = 0x20
	OFF_INT_ARRAY        = 0x28
	OFF_INT_ARRAY_SIZE   = 0x20

	// relative to a game object
	OFF_OBJ_NAME     = 0x30
	OBJ_NAME_LEN     = 64
	OFF_OBJ_ID       = 0x74
	OFF_OBJ_OWNER    = 0x84
	OFF_OBJ_KIND     = 0x8C
	OFF_OBJ_SUBKIND  = 0x8D
	OFF_OBJ_POSITION = 0xB0
	OFF_OBJ_ROTATION = 0xC0
	OBJ_READ_SIZE    = 0xC4
)

// UI number array holding the camera, and the slot inside it.
const (
	CAMERA_NUMBER_ARRAY = 24
	CAMERA_HEADING_SLOT = 3
	UI_INT_ARRAY_MAX    = 256
)

// Upper bounds accepted from an offsets profile.
const (
	MAX_OBJECT_TABLE_SIZE = 4096
	MAX_PARTY_MEMBERS     = 64
	MAX_OBJ_READ_SIZE     = 0x4000
)

// Window settings
const (
	SCREEN_WIDTH  = 1024
	SCREEN_HEIGHT = 768

	MIN_ZOOM = 0.1
	MAX_ZOOM = 8.0
)
