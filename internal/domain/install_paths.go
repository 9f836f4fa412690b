package domain

import "sort"

// VersionPaths is the installation path data stored for one version. Older
// records hold a single path for every channel; current records hold one path
// per channel.
type VersionPaths interface {
	Resolve(channel Channel) (string, bool)
	isVersionPaths()
}

type LegacyVersionPath struct {
	Path string
}

type ChannelVersionPaths map[Channel]string

func (LegacyVersionPath) isVersionPaths()   {}
func (ChannelVersionPaths) isVersionPaths() {}

// Resolve ignores the channel: a legacy path applies to all of them.
func (p LegacyVersionPath) Resolve(Channel) (string, bool) {
	return p.Path, p.Path != ""
}

func (p ChannelVersionPaths) Resolve(channel Channel) (string, bool) {
	path, ok := p[channel]
	if !ok || path == "" {
		return "", false
	}

	return path, true
}

func (p ChannelVersionPaths) Channels() []Channel {
	channels := make([]Channel, 0, len(p))
	for channel := range p {
		channels = append(channels, channel)
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })

	return channels
}

// MigrateVersionPaths converts any shape to the per-channel shape. A legacy
// path is assigned to legacyChannel. The input is never modified.
func MigrateVersionPaths(paths VersionPaths, legacyChannel Channel) ChannelVersionPaths {
	switch p := paths.(type) {
	case LegacyVersionPath:
		if p.Path == "" {
			return ChannelVersionPaths{}
		}
		return ChannelVersionPaths{legacyChannel: p.Path}
	case ChannelVersionPaths:
		migrated := make(ChannelVersionPaths, len(p))
		for channel, path := range p {
			migrated[channel] = path
		}
		return migrated
	default:
		return ChannelVersionPaths{}
	}
}

// InstallRecord holds every known installation path of one game.
type InstallRecord struct {
	Game     GameID
	Versions map[Version]VersionPaths
}

func (r InstallRecord) Resolve(version Version, channel Channel) (string, bool) {
	paths, ok := r.Versions[version]
	if !ok || paths == nil {
		return "", false
	}

	return paths.Resolve(channel)
}

// LegacyPath reports the single path of version when it is still stored in the
// shape that answers every channel.
func (r InstallRecord) LegacyPath(version Version) (string, bool) {
	legacy, ok := r.Versions[version].(LegacyVersionPath)
	if !ok || legacy.Path == "" {
		return "", false
	}

	return legacy.Path, true
}

func (r InstallRecord) SortedVersions() []Version {
	versions := make([]Version, 0, len(r.Versions))
	for version := range r.Versions {
		versions = append(versions, version)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })

	return versions
}

// WithPath returns a copy of r where version/channel points at path. The
// touched version is always stored in the per-channel shape.
func (r InstallRecord) WithPath(version Version, channel Channel, path string, legacyChannel Channel) InstallRecord {
	updated := r.clone()
	migrated := MigrateVersionPaths(updated.Versions[version], legacyChannel)
	migrated[channel] = path
	updated.Versions[version] = migrated

	return updated
}

func (r InstallRecord) WithoutPath(version Version, channel Channel, legacyChannel Channel) InstallRecord {
	updated := r.clone()
	current, ok := updated.Versions[version]
	if !ok {
		return updated
	}

	migrated := MigrateVersionPaths(current, legacyChannel)
	delete(migrated, channel)
	if len(migrated) == 0 {
		delete(updated.Versions, version)
		return updated
	}
	updated.Versions[version] = migrated

	return updated
}

func (r InstallRecord) clone() InstallRecord {
	versions := make(map[Version]VersionPaths, len(r.Versions))
	for version, paths := range r.Versions {
		switch p := paths.(type) {
		case ChannelVersionPaths:
			versions[version] = MigrateVersionPaths(p, 0)
		default:
			versions[version] = paths
		}
	}

	return InstallRecord{Game: r.Game, Versions: versions}
}
