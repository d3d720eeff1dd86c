package canvas

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// MaxLineLength is the longest line WritePPM emits.
const MaxLineLength = 70

// channel maps a color component to 0–255 as clamp(ceil(v·255), 0, 255).
func channel(v float64) uint8 {
	out := math.Ceil(v * 255)
	switch {
	case out >= 255:
		return 255
	case out > 0:
		return uint8(out)
	}
	return 0 // negative or NaN
}

// WritePPM serializes the canvas as plain PPM (P3). Each canvas row starts a
// new line; long rows wrap between numbers so no line exceeds MaxLineLength.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height)

	var buf [3]byte
	for y := 0; y < c.Height; y++ {
		lineLen := 0
		for x := 0; x < c.Width; x++ {
			p := c.pix[y*c.Width+x]
			for _, v := range [3]float64{p.Red(), p.Green(), p.Blue()} {
				tok := strconv.AppendUint(buf[:0], uint64(channel(v)), 10)
				switch {
				case lineLen == 0:
				case lineLen+1+len(tok) > MaxLineLength:
					bw.WriteByte('\n')
					lineLen = 0
				default:
					bw.WriteByte(' ')
					lineLen++
				}
				bw.Write(tok)
				lineLen += len(tok)
			}
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("canvas: write ppm: %w", err)
	}
	return nil
}

// PPM returns WritePPM's output as a string.
func (c *Canvas) PPM() string {
	var sb strings.Builder
	c.WritePPM(&sb)
	return sb.String()
}
