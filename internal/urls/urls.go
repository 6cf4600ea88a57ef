package urls

// Project links shown in help text and the TUI header.
// All URLs point to the repository at https://github.com/muurk/florist

// Repository is the project home page.
const Repository = "https://github.com/muurk/florist"

// RepositoryDisplay is Repository without the scheme, for tight layouts.
const RepositoryDisplay = "github.com/muurk/florist"

// SeedFiles documents the JSON and YAML seed formats accepted by --seed.
const SeedFiles = Repository + "#seed-files"

// Issues is where bugs get reported.
const Issues = Repository + "/issues"
