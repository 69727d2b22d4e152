// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package cascade resolves an application's configuration from layered sources
selected by deployment and instance names.

The selection is derived from an explicit environment table ([Env]):
NODE_CONFIG_ENV or NODE_ENV name the deployments (comma separated,
`development` by default) and NODE_APP_INSTANCE names the instance.
[Candidates] expands a [Selection] into the ordered source names that would be
consulted, from least to most specific:

	default, default-{instance},
	{deployment}, {deployment}-{instance}, ...
	{host}, {host}-{instance}, {host}-{deployment}, ...
	local, local-{instance}, local-{deployment}, ...

[Load] checks that every selector matches at least one supplied [Source].
With NODE_CONFIG_STRICT_MODE set, a mismatch or an ambiguous selector
(`default` or `local`) aborts with an [*Error]. Otherwise it writes warnings
to the diagnostic writer, which SUPPRESS_NO_CONFIG_WARNING can silence for
mismatches. The matched sources are then deep merged into an immutable
[Config], later sources overriding earlier ones.

The wording of errors and warnings is stable and must not change,
since tooling matches on it.

Reading files is left to collaborators such as the provider/dir package.
*/
package cascade
