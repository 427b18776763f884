package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/shrinkwrap/pkg/errors"
)

const generatedHeader = `# shrinkwrap configuration
#
# input:   directory scanned for image assets (required)
# output:  backup directory mirroring input's structure (required)
# format:  target format: png, jpeg, jpg, or webp
# quality: small (quality 80) or smallest (quality 60)
# workdir: directory whose text files get path references rewritten
`

// Generate renders a starter config file for the given settings.
func Generate(cfg *Config) ([]byte, error) {
	body, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render config")
	}
	return append([]byte(generatedHeader+"\n"), body...), nil
}
