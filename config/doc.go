// Package config loads the YAML settings shared by the fission CLI and the
// network service, and builds the zap logger they select.
//
//	listen: 127.0.0.1:50051
//	spec_dir: /opt/fission/languages
//	language: x86:LE:64:default
//	max_instructions: 100
//	block_instructions: 200
//	decompile_steps: 10000
//	output_capacity: 65536
//	log:
//	  level: debug
//	  development: true
//
// Missing keys keep their defaults; unknown keys are an error.
package config
