package main

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/blanket"
	"github.com/aretw0/blanket/internal/adapters/file"
	"github.com/aretw0/blanket/internal/adapters/redis"
	"github.com/aretw0/blanket/pkg/adapters/manifest"
	"github.com/aretw0/blanket/pkg/adapters/memory"
	"github.com/aretw0/blanket/pkg/adapters/openmc"
	"github.com/aretw0/blanket/pkg/domain"
	"github.com/aretw0/blanket/pkg/groups"
	"github.com/aretw0/blanket/pkg/ports"
)

// lockTTL bounds how long a crashed build can hold a case lock.
const lockTTL = 30 * time.Second

// groups loads the configured group structure registry, or nil when none is set.
func (a *app) groups() (*groups.Registry, error) {
	if a.cfg.Groups.File == "" {
		return nil, nil
	}
	return groups.LoadFile(a.cfg.Groups.File)
}

// assembler wires the assembler with the configured logger and groups.
func (a *app) assembler(observer blanket.BuildObserver) (*blanket.Assembler, *groups.Registry, error) {
	reg, err := a.groups()
	if err != nil {
		return nil, nil, err
	}
	opts := []blanket.Option{blanket.WithLogger(a.logger)}
	if reg != nil {
		opts = append(opts, blanket.WithGroups(reg))
	}
	if observer != nil {
		opts = append(opts, blanket.WithObserver(observer))
	}
	return blanket.New(opts...), reg, nil
}

// build assembles the configured case.
func (a *app) build(ctx context.Context) (*domain.Model, error) {
	asm, _, err := a.assembler(nil)
	if err != nil {
		return nil, err
	}
	return asm.Build(ctx, a.cfg.Case)
}

// exporter returns the exporter for format writing into dir.
func (a *app) exporter(format, dir string, reg *groups.Registry) (ports.Exporter, error) {
	switch format {
	case "openmc":
		opts := []openmc.Option{openmc.WithLogger(a.logger)}
		if reg != nil {
			opts = append(opts, openmc.WithGroups(reg))
		}
		return openmc.New(dir, opts...), nil
	case "manifest":
		return manifest.New(dir, manifest.WithGenerator("blanket "+blanket.Version)), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// modelStore is an opened snapshot store. Locker is nil for single-process backends.
type modelStore struct {
	ports.ModelStore
	Locker ports.Locker
	close  func() error
}

func (s *modelStore) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openStore opens the configured store, or returns nil for backend "none".
func (a *app) openStore() (*modelStore, error) {
	sc := a.cfg.Store
	switch sc.Backend {
	case "none":
		return nil, nil
	case "memory":
		return &modelStore{ModelStore: memory.NewStore()}, nil
	case "file":
		return &modelStore{ModelStore: file.New(sc.Path)}, nil
	case "redis":
		client := backend.NewClient(&backend.Options{
			Addr:     sc.Redis.Addr,
			Password: sc.Redis.Password,
			DB:       sc.Redis.DB,
		})
		opts := []redis.Option{redis.WithTTL(sc.Redis.TTL)}
		if sc.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(sc.Redis.Prefix))
		}
		store := redis.NewFromClient(client, opts...)
		return &modelStore{
			ModelStore: store,
			Locker:     redis.NewLocker(client, sc.Redis.LockPrefix),
			close:      store.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", sc.Backend)
	}
}

// requireStore opens the store and fails when none is configured.
func (a *app) requireStore() (*modelStore, error) {
	s, err := a.openStore()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("no model store configured (set store.backend)")
	}
	return s, nil
}

// save stores the model under its case name, holding the case lock when the
// backend provides one.
func (s *modelStore) save(ctx context.Context, m *domain.Model) error {
	if s.Locker != nil {
		unlock, err := s.Locker.Lock(ctx, m.Name, lockTTL)
		if err != nil {
			return fmt.Errorf("failed to lock case %q: %w", m.Name, err)
		}
		defer unlock(context.WithoutCancel(ctx))
	}
	return s.Save(ctx, m.Name, m)
}
