package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fachebot/tube-summary/internal/config"
	"github.com/fachebot/tube-summary/internal/logger"
)

type Exporter struct {
	config *config.Output
}

func NewExporter(cfg *config.Output) *Exporter {
	return &Exporter{config: cfg}
}

// FileName 导出文件名，如 dQw4w9WgXcQ_summary.pdf
func FileName(videoID, format string) string {
	return fmt.Sprintf("%s_summary.%s", videoID, format)
}

// Export 按配置的格式逐个写入输出目录
// 某个格式失败时记录日志并继续写其余格式，返回已写入的文件和合并后的错误
func (e *Exporter) Export(ctx context.Context, videoID, title, summary string) ([]string, error) {
	if err := os.MkdirAll(e.config.Dir, 0755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}

	var (
		files []string
		errs  []error
	)
	for _, format := range e.config.Formats {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		path := filepath.Join(e.config.Dir, FileName(videoID, format))
		if err := e.write(path, format, title, summary); err != nil {
			logger.Errorf("[Export] 导出 %s 失败: %v", format, err)
			errs = append(errs, fmt.Errorf("导出 %s 失败: %w", format, err))
			continue
		}

		logger.Infof("[Export] 已导出 %s", path)
		files = append(files, path)
	}

	return files, errors.Join(errs...)
}

func (e *Exporter) write(path, format, title, summary string) error {
	switch format {
	case config.FormatText:
		return os.WriteFile(path, RenderText(summary), 0644)
	case config.FormatPDF:
		data, err := RenderPDF(summary)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	case config.FormatDOCX:
		return WriteDOCX(path, title, summary)
	default:
		return fmt.Errorf("未知的导出格式: %s", format)
	}
}
