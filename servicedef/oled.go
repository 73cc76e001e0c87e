package servicedef

// Font sizes accepted by peach-oled's write method.
const (
	Font6x8   = "6x8"
	Font6x12  = "6x12"
	Font8x16  = "8x16"
	Font12x16 = "12x16"
)
