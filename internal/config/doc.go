// Package config provides loading and environment overlay for gitmsg
// configuration. It exposes a Default() baseline, a JSON file loader, and
// an env overlay, and converts the result into trailer parse options.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/gitmsg.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	it := trailer.New(message, cfg.Options()...)
//	defer it.Close()
package config
