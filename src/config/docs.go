// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads a [registry.Config] from a JSON or YAML file.
//
// Loading happens in this order:
//
//  1. The defaults of [registry.DefaultConfig] are applied.
//  2. When no path is given, [FileEnvKey] names the file.
//  3. The file is validated against the embedded JSON schema and merged over
//     the defaults. The format follows the extension: .json, .yaml or .yml.
//  4. Environment variables override the result, see [Overrides].
//
// Required fields are not checked here; [registry.New] does that, so a
// configuration can be completed in code after loading.
package config
