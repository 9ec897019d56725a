package upgrade

import (
	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/defaults"
)

// Defaults upgrades d to target. The Defaults document family has
// never grown past v1, so there is no chain to walk: any target other
// than the current version is either a downgrade or an unknown
// version, both rejected.
func Defaults(d *defaults.Defaults, target uint64) (*defaults.Defaults, *modulemderrors.Error) {
	if target < defaults.LatestMDVersion {
		return nil, modulemderrors.New(modulemderrors.Upgrade, "cannot downgrade defaults").
			WithDetail("target", target)
	}
	if target > defaults.LatestMDVersion {
		return nil, modulemderrors.New(modulemderrors.Upgrade, "unknown defaults target version").
			WithDetail("target", target)
	}
	return d.DeepCopy(), nil
}
