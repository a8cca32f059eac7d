package sysops

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/frozenexplorer/PoPL-project/common/container"
)

// LoadDirectory 读取目录下的条目 按名称顺序
func LoadDirectory(fsys afero.Fs, dir string) (*container.List[Item], error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", dir)
	}
	items := container.NewList[Item](container.WithCapacity[Item](len(infos)))
	for _, info := range infos {
		if err := items.Add(newItem(info)); err != nil {
			return nil, errors.Wrapf(err, "load %s", info.Name())
		}
	}
	slog.Debug("[Loader] LoadDirectory", slog.String("dir", dir), slog.Int("items", items.Size()))
	return items, nil
}
