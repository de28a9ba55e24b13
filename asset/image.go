package asset

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/rushteam/evalkit/core"
)

// DefaultBaseDir 是物品图片的默认根目录。
const DefaultBaseDir = "data/images"

// Size 是目标像素尺寸。
type Size struct {
	Width  int
	Height int
}

// DefaultSize 是默认的展示尺寸 200×200。
var DefaultSize = Size{Width: 200, Height: 200}

// Loader 按分片约定定位并加载物品图片。
//
// 路径约定：<BaseDir>/<id 前 3 位>/<id>.jpg
// 前 3 位作为目录分片，避免单目录下文件过多。
type Loader struct {
	// BaseDir 图片根目录，为空时使用 DefaultBaseDir
	BaseDir string
}

// Path 返回物品图片的文件路径。ID 不足 3 位时返回 INVALID_INPUT。
func (l *Loader) Path(articleID string) (string, error) {
	if len(articleID) < 3 {
		return "", core.NewDomainError(core.ModuleAsset, core.ErrorCodeInvalidInput,
			fmt.Sprintf("article id %q too short for sharding", articleID))
	}
	base := l.BaseDir
	if base == "" {
		base = DefaultBaseDir
	}
	return filepath.Join(base, articleID[:3], articleID+".jpg"), nil
}

// Open 加载物品图片并缩放到目标尺寸。
// size 为零值时使用 DefaultSize。文件不存在等 IO 错误按原样向上传播。
func (l *Loader) Open(articleID string, size Size) (image.Image, error) {
	path, err := l.Path(articleID)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}

	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultSize
	}
	return imaging.Resize(img, size.Width, size.Height, imaging.Lanczos), nil
}
