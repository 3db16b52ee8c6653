/*
Package config provides a YAML-backed application configuration on top of
knadh/koanf and sets up tracing from it.

Configuration files look like this:

    tracing:
      adapter: go            # or "zap"
    tracelevel:
      root: Error
      minilayout.css: Debug
    layout:
      maxdepth: 128
      viewport:
        width: 800
        height: 600

Nested keys are addressed with dots, e.g. "layout.viewport.width".
Type Conf wraps schuko's koanf adapter and implements schuko.Configuration, so any configuration-aware
component of schuko (most notably trace2go) may be initialized from it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config
