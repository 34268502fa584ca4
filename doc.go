/*
Package envied checks that a process environment provides every variable an
application needs, each coercible to its declared type.

# Concept

Variables are declared in an Envfile (YAML) or programmatically through
package schema. Each declaration has a type (integer, boolean, uri, ...) and
belongs to one or more groups such as "default" or "production". At startup
the application validates the groups it runs in; every missing or invalid
variable is reported at once.

# Usage

	package main

	import (
		"log"

		"github.com/aretw0/envied"
		"github.com/aretw0/envied/pkg/env"
	)

	func main() {
		values, err := envied.Require("Envfile.yml", envied.GroupsFromEnv(env.OS())...)
		if err != nil {
			log.Fatal(err)
		}
		port := values["PORT"].(int64)
		_ = port
	}

The envied command (cmd/envied) wraps the same checks for shells and CI, and
adds `envied extract`, which greps source files for ENV["..."] references to
help write the Envfile.
*/
package envied
