package trackppt

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

type faceKey struct {
	name string
	size float64
	bold bool
}

// FontCache finds TrueType/OpenType fonts by family name and caches the
// faces built from them. Directories are scanned lazily on first use.
//
// Faces for fonts that cannot be found fall back to the Go fonts bundled
// with x/image, so rendering never depends on what is installed. Those
// have no CJK glyphs.
type FontCache struct {
	mu      sync.RWMutex
	dirs    []string
	fonts   map[string]*opentype.Font // lowercase family, full or file name
	faces   map[faceKey]font.Face
	scanned bool
}

// NewFontCache searches the OS font directories plus extraDirs.
func NewFontCache(extraDirs ...string) *FontCache {
	return newFontCache(append(systemFontDirs(), extraDirs...))
}

// NewIsolatedFontCache searches only dirs. With no dirs every lookup falls
// back to the bundled Go fonts, which keeps rendering reproducible.
func NewIsolatedFontCache(dirs ...string) *FontCache {
	return newFontCache(dirs)
}

func newFontCache(dirs []string) *FontCache {
	return &FontCache{
		dirs:  dirs,
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// fallbackFamilies are tried in order when the requested family is missing.
// CJK-capable families come first since row labels are often Chinese.
var fallbackFamilies = []string{
	"microsoft yahei", "pingfang sc", "noto sans cjk sc", "source han sans sc",
	"wenquanyi micro hei", "simhei", "arial", "dejavu sans", "liberation sans",
}

// chineseFontAliases maps Chinese family names to the English names fonts
// usually register under.
var chineseFontAliases = map[string]string{
	"宋体":   "simsun",
	"黑体":   "simhei",
	"微软雅黑": "microsoft yahei",
	"楷体":   "kaiti",
	"仿宋":   "fangsong",
	"等线":   "dengxian",
	"苹方":   "pingfang sc",
	"思源黑体": "source han sans sc",
}

// Face returns a face for the family at sizePt (72 DPI, so points equal
// pixels). It never returns nil.
func (fc *FontCache) Face(name string, sizePt float64, bold bool) font.Face {
	fc.ensureScanned()
	key := faceKey{name: strings.ToLower(name), size: sizePt, bold: bold}

	fc.mu.RLock()
	face, ok := fc.faces[key]
	fc.mu.RUnlock()
	if ok {
		return face
	}

	f := fc.lookup(key.name, bold)
	for _, fb := range fallbackFamilies {
		if f != nil {
			break
		}
		f = fc.lookup(fb, bold)
	}
	if f == nil {
		f = bundledFont(bold)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		face = mustBundledFace(sizePt, bold)
	}

	fc.mu.Lock()
	fc.faces[key] = face
	fc.mu.Unlock()
	return face
}

// lookup finds a parsed font, preferring a bold variant when asked.
func (fc *FontCache) lookup(lower string, bold bool) *opentype.Font {
	if alias, ok := chineseFontAliases[lower]; ok {
		lower = alias
	}
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	if bold {
		// "Arial Bold" by full name, "arialbd" and "msyhbd" by file name.
		for _, suffix := range []string{" bold", "bd", "b"} {
			if f, ok := fc.fonts[lower+suffix]; ok {
				return f
			}
		}
	}
	return fc.fonts[lower]
}

var (
	bundledOnce    sync.Once
	bundledRegular *opentype.Font
	bundledBold    *opentype.Font
)

func bundledFont(bold bool) *opentype.Font {
	bundledOnce.Do(func() {
		// The embedded Go fonts are known-good; a parse failure is a build
		// defect.
		var err error
		if bundledRegular, err = opentype.Parse(goregular.TTF); err != nil {
			panic(err)
		}
		if bundledBold, err = opentype.Parse(gobold.TTF); err != nil {
			panic(err)
		}
	})
	if bold {
		return bundledBold
	}
	return bundledRegular
}

func mustBundledFace(sizePt float64, bold bool) font.Face {
	face, err := opentype.NewFace(bundledFont(bold), &opentype.FaceOptions{Size: max(sizePt, 1), DPI: 72})
	if err != nil {
		panic(err)
	}
	return face
}

// LoadFontData registers a font from raw bytes under name and under the
// names recorded in the font itself.
func (fc *FontCache) LoadFontData(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.fonts[strings.ToLower(name)] = f
	fc.registerNames(f)
	// Faces built before this call may have used a fallback.
	clear(fc.faces)
	return nil
}

// LoadFont registers a font file.
func (fc *FontCache) LoadFont(name, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > maxFontFileSize {
		return fmt.Errorf("font file too large: %d bytes (max %d)", info.Size(), maxFontFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return fc.LoadFontData(name, data)
}

const (
	maxFontScanDepth = 3
	maxFontFileSize  = 40 << 20 // CJK fonts are large
)

func (fc *FontCache) ensureScanned() {
	fc.mu.RLock()
	scanned := fc.scanned
	fc.mu.RUnlock()
	if scanned {
		return
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.scanned {
		return
	}
	fc.scanned = true
	for _, dir := range fc.dirs {
		fc.scanDir(dir, 0)
	}
}

// scanDir must be called with fc.mu held.
func (fc *FontCache) scanDir(dir string, depth int) {
	if depth > maxFontScanDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			fc.scanDir(path, depth+1)
			continue
		}
		lower := strings.ToLower(entry.Name())
		ext := filepath.Ext(lower)
		if ext != ".ttf" && ext != ".otf" && ext != ".ttc" && ext != ".otc" {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Size() > maxFontFileSize {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		base := strings.TrimSuffix(lower, ext)
		if ext == ".ttc" || ext == ".otc" {
			fc.loadCollection(data, base)
		} else if f, err := opentype.Parse(data); err == nil {
			fc.fonts[base] = f
			fc.registerNames(f)
		}
	}
}

func (fc *FontCache) loadCollection(data []byte, base string) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return
	}
	for i := range coll.NumFonts() {
		f, err := coll.Font(i)
		if err != nil {
			continue
		}
		if i == 0 {
			fc.fonts[base] = f
		}
		fc.registerNames(f)
	}
}

func (fc *FontCache) registerNames(f *opentype.Font) {
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		if n, err := f.Name(nil, id); err == nil && n != "" {
			fc.fonts[strings.ToLower(n)] = f
		}
	}
}

func systemFontDirs() []string {
	home, _ := os.UserHomeDir()
	var dirs []string
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	case "darwin":
		dirs = append(dirs, "/System/Library/Fonts", "/Library/Fonts")
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	default:
		dirs = append(dirs, "/usr/share/fonts", "/usr/local/share/fonts")
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
	}
	return dirs
}
