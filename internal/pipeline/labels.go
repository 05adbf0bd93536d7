package pipeline

import "github.com/music-assistant/massbuild/internal/config"

// Metadata label keys attached to the final image.
//
// The org.opencontainers.* keys follow the OCI image annotation
// specification; the io.hass.* keys classify the image for Home Assistant
// add-on tooling.
const (
	labelTitle         = "org.opencontainers.image.title"
	labelDescription   = "org.opencontainers.image.description"
	labelSource        = "org.opencontainers.image.source"
	labelAuthors       = "org.opencontainers.image.authors"
	labelDocumentation = "org.opencontainers.image.documentation"
	labelLicenses      = "org.opencontainers.image.licenses"
	labelVersion       = "org.opencontainers.image.version"

	labelHassName        = "io.hass.name"
	labelHassDescription = "io.hass.description"
	labelHassVersion     = "io.hass.version"
	labelHassType        = "io.hass.type"
	labelHassArch        = "io.hass.arch"
)

// Builds the metadata label set for the final image.
//
// Every version value is read from the spec's single application version
// parameter, the same value that selected the wheel, so the advertised
// identity can never drift from the installed package. Descriptive values
// come from the image configuration; only the version and architecture
// labels vary between builds.
func imageLabels(spec Spec, md config.Metadata) map[string]string {
	return map[string]string{
		labelTitle:         md.Title,
		labelDescription:   md.Description,
		labelSource:        md.Source,
		labelAuthors:       md.Authors,
		labelDocumentation: md.Documentation,
		labelLicenses:      md.License,
		labelVersion:       spec.AppVersion,

		labelHassName:        md.Title,
		labelHassDescription: md.Description,
		labelHassVersion:     spec.AppVersion,
		labelHassType:        md.AddonType,
		labelHassArch:        spec.Arch(),
	}
}
