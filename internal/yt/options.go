package yt

// Options regroupe les drapeaux passés à yt-dlp pour l'extraction des métadonnées.
type Options struct {
	ShowWarnings bool   // sinon --no-warnings
	IgnoreConfig bool   // --no-config : ignore les configs utilisateur
	CookiesFile  string // --cookies, contourne la vérification anti-bot
}

// DefaultOptions renvoie les options standard; showWarnings vient du yaml de config.
func DefaultOptions(showWarnings bool) Options {
	return Options{ShowWarnings: showWarnings, IgnoreConfig: true}
}

// ExtractArgs construit les arguments de `yt-dlp -j` pour url.
// --skip-download, --no-progress et --no-update sont toujours présents.
func (o Options) ExtractArgs(url string) []string {
	args := make([]string, 0, 10)
	// --no-config en tête pour que rien ne modifie le comportement
	if o.IgnoreConfig {
		args = append(args, "--no-config")
	}
	args = append(args, "-j", "--skip-download")
	if !o.ShowWarnings {
		args = append(args, "--no-warnings")
	}
	args = append(args, "--no-progress", "--no-update")
	if o.CookiesFile != "" {
		args = append(args, "--cookies", o.CookiesFile)
	}
	// "--" : une URL commençant par "-" ne doit pas être lue comme une option
	return append(args, "--", url)
}

// VersionArgs renvoie les arguments de `yt-dlp --version`.
func (o Options) VersionArgs() []string {
	if o.IgnoreConfig {
		return []string{"--no-config", "--version"}
	}
	return []string{"--version"}
}
