package domain

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color 显示颜色，格式固定为 #rrggbb。
type Color string

// ColorFromRGB 把 24 位整数渲染成 #rrggbb（保留前导零）。
func ColorFromRGB(v uint32) Color {
	return Color(fmt.Sprintf("#%06x", v&0xffffff))
}

// ParseColor 校验并规范化颜色字符串（接受有无 # 前缀、大小写）。
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return "", ErrInvalidColor.WithData("color", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", ErrInvalidColor.WithData("color", s).WithCause(err)
	}
	return ColorFromRGB(uint32(v)), nil
}

// RGB 返回三个通道；非法颜色返回黑色。
func (c Color) RGB() (r, g, b uint8) {
	v, err := strconv.ParseUint(strings.TrimPrefix(string(c), "#"), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// NRGBA 带透明度的颜色，alpha 取值 [0,1]。
func (c Color) NRGBA(alpha float64) color.NRGBA {
	r, g, b := c.RGB()
	alpha = min(max(alpha, 0), 1)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

// Palette 预设颜色表，在随机分配之前生效。
type Palette struct {
	Territories map[int]Color
	Owners      map[int]Color
}
