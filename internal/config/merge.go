// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package config

// Overlay merges a repo config over a global one. Only non-zero repo values
// override global values.
func Overlay(global, repo *Config) *Config {
	merged := *global

	if repo.Title != "" {
		merged.Title = repo.Title
	}
	if repo.OutputFormat != "" {
		merged.OutputFormat = repo.OutputFormat
	}
	if repo.GroupBy != "" {
		merged.GroupBy = repo.GroupBy
	}
	if repo.ListLimit != 0 {
		merged.ListLimit = repo.ListLimit
	}
	if repo.Filter.Query != "" {
		merged.Filter.Query = repo.Filter.Query
	}
	if repo.Filter.Owner != "" {
		merged.Filter.Owner = repo.Filter.Owner
	}
	if repo.Filter.Stage != "" {
		merged.Filter.Stage = repo.Filter.Stage
	}
	if repo.Filter.HideUnassigned != nil {
		merged.Filter.HideUnassigned = repo.Filter.HideUnassigned
	}
	if len(repo.Sort) > 0 {
		merged.Sort = repo.Sort
	}

	return &merged
}

// Merge combines file-based config with CLI-provided settings.
// CLI values take precedence; zero-value CLI fields fall through to file
// config, except filter fields marked in cli.FilterSet.
func Merge(fileCfg *Config, cli Settings) Settings {
	result := cli

	if result.Title == "" {
		result.Title = fileCfg.Title
	}
	if result.OutputFormat == "" {
		result.OutputFormat = fileCfg.OutputFormat
	}
	if result.GroupBy == "" {
		result.GroupBy = fileCfg.GroupBy
	}
	if result.ListLimit == 0 && fileCfg.ListLimit > 0 {
		result.ListLimit = fileCfg.ListLimit
	}

	// Filter fields fall through individually unless set on the CLI.
	set := cli.FilterSet
	if !set.Query && result.Filter.Query == "" {
		result.Filter.Query = fileCfg.Filter.Query
	}
	if !set.Owner && result.Filter.Owner == "" {
		result.Filter.Owner = fileCfg.Filter.Owner
	}
	if !set.Stage && result.Filter.Stage == "" {
		result.Filter.Stage = fileCfg.Filter.Stage
	}
	if !set.HideUnassigned && !result.Filter.HideUnassigned && fileCfg.Filter.HideUnassigned != nil {
		result.Filter.HideUnassigned = *fileCfg.Filter.HideUnassigned
	}

	if len(result.Sort) == 0 && len(fileCfg.Sort) > 0 {
		result.Sort = append([]int(nil), fileCfg.Sort...)
	}

	return result
}
