package favix

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/png"

	"golang.org/x/exp/slices"
)

// On-disk layout constants of the multi-resolution icon container.
const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	icoResType    = 1
	icoMaxDim     = 256
)

// ICOEntry is the decoded form of one 16 byte directory entry.
type ICOEntry struct {
	// Width and Height are the decoded pixel dimensions. On disk a byte value
	// of 0 stands for 256.
	Width  int
	Height int
	// Size is the exact byte length of the PNG payload.
	Size uint32
	// Offset is the payload position from the start of the container.
	Offset uint32
}

// PackICO encodes the images into a single multi-resolution ICO container.
// Every image is embedded as an independently compressed PNG payload. Entries
// are sorted ascending by pixel area, ties broken by input order, so identical
// inputs always produce identical output bytes. All multi-byte fields are
// little-endian.
func PackICO(images []*RasterImage) ([]byte, error) {
	if len(images) == 0 {
		return nil, ErrEmptyContainer
	}

	entries := make([]*RasterImage, len(images))
	copy(entries, images)
	slices.SortStableFunc(entries, func(a, b *RasterImage) bool {
		return a.Width*a.Height < b.Width*b.Height
	})

	payloads := make([][]byte, len(entries))
	for i, img := range entries {
		if img.Width > icoMaxDim || img.Height > icoMaxDim {
			return nil, fmt.Errorf("%w: %dx%d exceeds the %d pixel limit",
				ErrDimensionTooLarge, img.Width, img.Height, icoMaxDim)
		}
		data, err := encodePNG(img.Img)
		if err != nil {
			return nil, err
		}
		payloads[i] = data
	}

	var buf bytes.Buffer

	// ICONDIR header: reserved field, resource type, image count.
	binary.Write(&buf, binary.LittleEndian, uint16(0))
	binary.Write(&buf, binary.LittleEndian, uint16(icoResType))
	binary.Write(&buf, binary.LittleEndian, uint16(len(entries)))

	offset := uint32(icoHeaderSize + len(entries)*icoEntrySize)
	for i, img := range entries {
		buf.WriteByte(icoDim(img.Width))
		buf.WriteByte(icoDim(img.Height))
		buf.WriteByte(0)                                    // color count, 0 for truecolor
		buf.WriteByte(0)                                    // reserved
		binary.Write(&buf, binary.LittleEndian, uint16(1))  // color planes
		binary.Write(&buf, binary.LittleEndian, uint16(32)) // bits per pixel
		binary.Write(&buf, binary.LittleEndian, uint32(len(payloads[i])))
		binary.Write(&buf, binary.LittleEndian, offset)
		offset += uint32(len(payloads[i]))
	}

	for _, payload := range payloads {
		buf.Write(payload)
	}
	return buf.Bytes(), nil
}

// icoDim encodes a pixel dimension into the single byte directory field.
func icoDim(d int) byte {
	if d == icoMaxDim {
		return 0
	}
	return byte(d)
}

// DecodeICO parses the header and the directory of a container produced by
// PackICO and validates that every payload lies within the data bounds.
func DecodeICO(data []byte) ([]ICOEntry, error) {
	if len(data) < icoHeaderSize {
		return nil, fmt.Errorf("%w: truncated header", ErrInvalidContainer)
	}
	if binary.LittleEndian.Uint16(data[0:2]) != 0 ||
		binary.LittleEndian.Uint16(data[2:4]) != icoResType {
		return nil, fmt.Errorf("%w: bad header fields", ErrInvalidContainer)
	}

	count := int(binary.LittleEndian.Uint16(data[4:6]))
	if len(data) < icoHeaderSize+count*icoEntrySize {
		return nil, fmt.Errorf("%w: truncated directory", ErrInvalidContainer)
	}

	entries := make([]ICOEntry, count)
	for i := 0; i < count; i++ {
		raw := data[icoHeaderSize+i*icoEntrySize:]

		w, h := int(raw[0]), int(raw[1])
		if w == 0 {
			w = icoMaxDim
		}
		if h == 0 {
			h = icoMaxDim
		}
		size := binary.LittleEndian.Uint32(raw[8:12])
		offset := binary.LittleEndian.Uint32(raw[12:16])
		if uint64(offset)+uint64(size) > uint64(len(data)) {
			return nil, fmt.Errorf("%w: payload %d out of bounds", ErrInvalidContainer, i)
		}

		entries[i] = ICOEntry{Width: w, Height: h, Size: size, Offset: offset}
	}
	return entries, nil
}

// UnpackICO decodes the embedded payloads back into raster images, returned in
// directory order.
func UnpackICO(data []byte) ([]*RasterImage, error) {
	entries, err := DecodeICO(data)
	if err != nil {
		return nil, err
	}

	images := make([]*RasterImage, len(entries))
	for i, entry := range entries {
		payload := data[entry.Offset : entry.Offset+entry.Size]
		img, err := png.Decode(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("%w: payload %d: %v", ErrInvalidContainer, i, err)
		}
		images[i] = &RasterImage{
			Width:  entry.Width,
			Height: entry.Height,
			Img:    imgToNRGBA(img),
		}
	}
	return images, nil
}
