package header

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// backChevron is the back button glyph. The fill is substituted per color.
const backChevron = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
	`<path fill="#%06X" d="M15.41 7.41L14 6l-6 6 6 6 1.41-1.41L10.83 12z"/></svg>`

const defaultMaxIconCacheSize = 5

type iconKey struct {
	size  int
	color color.RGBA
}

// IconCache rasterizes the back button glyph and keeps the most recently
// used sizes and colors. It is not safe for concurrent use.
type IconCache struct {
	icons   map[iconKey]*image.RGBA
	order   []iconKey // tracks insertion order for LRU eviction
	maxSize int
}

func NewIconCache() *IconCache {
	return NewIconCacheWithSize(defaultMaxIconCacheSize)
}

func NewIconCacheWithSize(maxSize int) *IconCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &IconCache{
		icons:   make(map[iconKey]*image.RGBA),
		order:   make([]iconKey, 0, maxSize),
		maxSize: maxSize,
	}
}

// BackIcon returns the back glyph rasterized at size x size pixels in c.
func (c *IconCache) BackIcon(size int, col color.RGBA) (*image.RGBA, error) {
	key := iconKey{size: size, color: col}
	if img, exists := c.icons[key]; exists {
		c.moveToEnd(key)
		return img, nil
	}

	img, err := RasterizeSVG(fmt.Sprintf(backChevron, ColorToHex(col)), size)
	if err != nil {
		return nil, err
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.icons[key] = img
	c.order = append(c.order, key)
	return img, nil
}

// Len returns the number of cached images.
func (c *IconCache) Len() int {
	return len(c.order)
}

func (c *IconCache) moveToEnd(key iconKey) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *IconCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.icons, oldest)
}

// RasterizeSVG renders an SVG document into a size x size image.
func RasterizeSVG(svg string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rasterize svg: invalid size %d", size)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("rasterize svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
