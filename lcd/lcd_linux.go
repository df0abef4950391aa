package lcd

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	_FBIOGET_VSCREENINFO = 0x4600
	_FBIOGET_FSCREENINFO = 0x4602
)

type fbBitfield struct {
	Offset, Length, MSBRight uint32
}

type fbVarScreeninfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp fbBitfield
	_                        [20]uint32
}

type fbFixScreeninfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MMIOStart    uintptr
	MMIOLen      uint32
	Accel        uint32
	Capabilities uint16
	_            [2]uint16
}

// Open maps the framebuffer device at path, such as /dev/fb0. The
// device must be configured for 16 bits per pixel.
func Open(path string) (*LCD, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("lcd: %s: %w", path, err)
	}
	l, err := open(fd)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("lcd: %s: %w", path, err)
	}
	return l, nil
}

func open(fd int) (*LCD, error) {
	var vinfo fbVarScreeninfo
	if err := ioctl(fd, _FBIOGET_VSCREENINFO, unsafe.Pointer(&vinfo)); err != nil {
		return nil, fmt.Errorf("FBIOGET_VSCREENINFO: %w", err)
	}
	var finfo fbFixScreeninfo
	if err := ioctl(fd, _FBIOGET_FSCREENINFO, unsafe.Pointer(&finfo)); err != nil {
		return nil, fmt.Errorf("FBIOGET_FSCREENINFO: %w", err)
	}
	if vinfo.BitsPerPixel != 16 {
		return nil, fmt.Errorf("unsupported pixel depth %d", vinfo.BitsPerPixel)
	}
	mem, err := unix.Mmap(fd, 0, int(finfo.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	stride := int(finfo.LineLength)
	if stride == 0 {
		stride = int(vinfo.XResVirtual) * 2
	}
	// Draw into the visible page.
	start := int(vinfo.YOffset)*stride + int(vinfo.XOffset)*2
	l, err := newLCD(mem[start:], image.Pt(int(vinfo.XRes), int(vinfo.YRes)), stride)
	if err != nil {
		unix.Munmap(mem)
		return nil, err
	}
	l.close = func() error {
		err := unix.Munmap(mem)
		if cerr := unix.Close(fd); err == nil {
			err = cerr
		}
		return err
	}
	return l, nil
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
