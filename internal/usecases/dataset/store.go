// Package dataset mantém em memória o lote de vendas mais recente e a
// tabela auxiliar de lojas usada na reconciliação de gerente e cidade.
package dataset

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-indicators-api/internal/domain"
	"github.com/vfg2006/sales-indicators-api/pkg/normalizer"
	"github.com/vfg2006/sales-indicators-api/pkg/utils"
)

// Store guarda o estado vivo da aplicação. Um upload de vendas substitui o
// lote inteiro; um upload de lookup reconcilia os registros já carregados.
type Store struct {
	mu       sync.RWMutex
	records  []*domain.SaleRecord
	lookup   map[string]domain.LookupEntry
	batchID  string
	loadedAt time.Time
}

func NewStore() *Store {
	return &Store{
		lookup: make(map[string]domain.LookupEntry),
	}
}

// Replace descarta o lote atual e instala os registros informados,
// devolvendo o identificador do novo lote.
func (s *Store) Replace(records []*domain.SaleRecord) (string, error) {
	batchID, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "generating batch id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records
	s.batchID = batchID
	s.loadedAt = time.Now()

	s.reconcile()

	logrus.WithFields(logrus.Fields{
		"batch_id": batchID,
		"records":  len(records),
	}).Info("Lote de vendas substituído")

	return batchID, nil
}

// SetLookup instala a tabela auxiliar e reconcilia o lote carregado.
// Devolve quantos registros foram atualizados.
func (s *Store) SetLookup(lookup map[string]domain.LookupEntry) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookup = lookup

	updated := s.reconcile()

	logrus.WithFields(logrus.Fields{
		"stores":  len(lookup),
		"updated": updated,
	}).Info("Tabela de lojas atualizada")

	return updated
}

// reconcile aplica a tabela auxiliar sobre o lote carregado. O gerente é
// sempre sobrescrito quando a loja consta na tabela; a cidade só quando a
// tabela traz um valor não vazio. A operação é idempotente.
func (s *Store) reconcile() int {
	if len(s.lookup) == 0 {
		return 0
	}

	updated := 0
	for _, record := range s.records {
		entry, ok := s.lookup[normalizer.Normalize(record.Store)]
		if !ok {
			continue
		}

		changed := false
		if record.Manager != entry.Manager {
			record.Manager = entry.Manager
			changed = true
		}

		if entry.City != "" && record.City != entry.City {
			record.City = entry.City
			changed = true
		}

		if changed {
			updated++
		}
	}

	return updated
}

// Records devolve uma cópia do lote carregado. As cópias são por valor
// para que chamadores não observem reconciliações futuras.
func (s *Store) Records() []*domain.SaleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.SaleRecord, len(s.records))
	for i, record := range s.records {
		clone := *record
		out[i] = &clone
	}

	return out
}

// Lookup devolve a tabela auxiliar instalada, chaveada pela loja
// normalizada.
func (s *Store) Lookup() map[string]domain.LookupEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lookup
}

// BatchID devolve o identificador do lote atual, vazio quando nenhum
// upload foi feito.
func (s *Store) BatchID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.batchID
}

// LoadedAt devolve quando o lote atual foi carregado.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt
}
