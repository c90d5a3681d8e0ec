// Package config provides configuration for the rpn command.
//
// Defaults come from environment variables and are overridden by command
// line flags. An optional YAML file defines extra operators as Starlark
// lambdas.
//
// Example usage:
//
//	cfg, err := config.Load(os.Args)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg)
package config
