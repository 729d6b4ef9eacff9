package config

var Colors = map[string]Color{
	"black": {0, 0, 0},
	"white": {0xff, 0xff, 0xff},
	"red":   {0xff, 0, 0},
	"green": {0, 0xff, 0},
	"blue":  {0, 0, 0xff},
	"gray":  {0x80, 0x80, 0x80},
	"grey":  {0x80, 0x80, 0x80},
}
