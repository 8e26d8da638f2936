package meson

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"net"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultCGroupPath is the container identity hint read on Linux.
const DefaultCGroupPath = "/proc/1/cgroup"

// Source contributes host or process entropy to a fingerprint. A source
// returns ok=false when it has nothing to contribute.
type Source struct {
	Name    string
	Collect func() (data []byte, ok bool)
}

// FingerprintProvider derives the 4-byte generator id once and caches it.
// Sources that fail or panic are skipped.
type FingerprintProvider struct {
	sources []Source
	logger  zerolog.Logger

	once  sync.Once
	value [GeneratorIDSize]byte
}

// FingerprintOption configures a FingerprintProvider.
type FingerprintOption func(*FingerprintProvider)

// WithSources replaces the default entropy sources.
func WithSources(sources ...Source) FingerprintOption {
	return func(p *FingerprintProvider) {
		p.sources = sources
	}
}

// WithLogger sets the logger used to report skipped sources.
func WithLogger(logger zerolog.Logger) FingerprintOption {
	return func(p *FingerprintProvider) {
		p.logger = logger
	}
}

// NewFingerprintProvider returns a provider over DefaultSources unless
// WithSources is given. Nothing is computed until the first call to
// Fingerprint.
func NewFingerprintProvider(opts ...FingerprintOption) *FingerprintProvider {
	p := &FingerprintProvider{
		sources: DefaultSources(DefaultCGroupPath),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// StaticFingerprint returns a provider pinned to id.
func StaticFingerprint(id [GeneratorIDSize]byte) *FingerprintProvider {
	p := &FingerprintProvider{logger: zerolog.Nop()}
	p.once.Do(func() { p.value = id })
	return p
}

// Fingerprint returns the cached generator id, computing it on first use.
func (p *FingerprintProvider) Fingerprint() [GeneratorIDSize]byte {
	p.once.Do(func() {
		p.value = p.compute()
	})
	return p.value
}

// FingerprintHex returns the generator id as 8 lowercase hex characters.
func (p *FingerprintProvider) FingerprintHex() string {
	fp := p.Fingerprint()
	return encodeHex(fp[:])
}

func (p *FingerprintProvider) compute() [GeneratorIDSize]byte {
	crc := crc32.NewIEEE()
	used := 0
	for _, src := range p.sources {
		data, ok := p.collect(src)
		if !ok {
			p.logger.Debug().Str("source", src.Name).Msg("fingerprint source skipped")
			continue
		}
		crc.Write(data)
		used++
	}

	var out [GeneratorIDSize]byte
	binary.BigEndian.PutUint32(out[:], crc.Sum32())
	p.logger.Debug().
		Int("sources", used).
		Str("fingerprint", encodeHex(out[:])).
		Msg("generator fingerprint computed")
	return out
}

func (p *FingerprintProvider) collect(src Source) (data []byte, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Debug().Str("source", src.Name).Str("panic", fmt.Sprint(r)).Msg("fingerprint source panicked")
			data, ok = nil, false
		}
	}()
	if src.Collect == nil {
		return nil, false
	}
	return src.Collect()
}

// DefaultSources returns the cgroup, hostname, process and network
// interface sources in folding order.
func DefaultSources(cgroupPath string) []Source {
	return []Source{
		CGroupSource(cgroupPath),
		HostnameSource(),
		ProcessSource(),
		InterfaceSource(),
	}
}

// CGroupSource contributes the CRC32 of the file at path. Missing or
// unreadable files contribute nothing.
func CGroupSource(path string) Source {
	return Source{
		Name: "cgroup",
		Collect: func() ([]byte, bool) {
			content, err := os.ReadFile(path)
			if err != nil {
				return nil, false
			}
			return binary.BigEndian.AppendUint32(nil, crc32.ChecksumIEEE(content)), true
		},
	}
}

// HostnameSource contributes the hostname, or 8 random bytes when the
// hostname is unavailable.
func HostnameSource() Source {
	return Source{
		Name: "hostname",
		Collect: func() ([]byte, bool) {
			name, err := os.Hostname()
			if err != nil || name == "" {
				return randomInt64Bytes()
			}
			return []byte(name), true
		},
	}
}

// ProcessSource contributes the process id, or random bytes when it is not
// usable.
func ProcessSource() Source {
	return Source{
		Name: "process",
		Collect: func() ([]byte, bool) {
			pid := os.Getpid()
			if pid <= 0 {
				return randomInt64Bytes()
			}
			b := int32Bytes(int32(pid))
			return b[:], true
		},
	}
}

// InterfaceSource contributes every hardware address and, for interfaces
// that are up, the text form of every address that is neither loopback nor
// unspecified.
func InterfaceSource() Source {
	return Source{
		Name: "interfaces",
		Collect: func() ([]byte, bool) {
			ifaces, err := net.Interfaces()
			if err != nil {
				return nil, false
			}
			var out []byte
			for _, iface := range ifaces {
				if len(iface.HardwareAddr) > 0 {
					out = append(out, iface.HardwareAddr...)
				}
				if iface.Flags&net.FlagUp == 0 {
					continue
				}
				addrs, err := iface.Addrs()
				if err != nil {
					continue
				}
				for _, addr := range addrs {
					ip := addrIP(addr)
					if ip == nil || ip.IsLoopback() || ip.IsUnspecified() {
						continue
					}
					out = append(out, ip.String()...)
				}
			}
			return out, len(out) > 0
		},
	}
}

func addrIP(addr net.Addr) net.IP {
	switch v := addr.(type) {
	case *net.IPNet:
		return v.IP
	case *net.IPAddr:
		return v.IP
	default:
		return nil
	}
}

func randomInt64Bytes() ([]byte, bool) {
	var v int64
	if err := binary.Read(rand.Reader, binary.BigEndian, &v); err != nil {
		return nil, false
	}
	return int64Bytes(v), true
}
