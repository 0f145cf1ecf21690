// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import (
	"encoding/binary"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/oscoin-ledger-go/crypto/digest"
	"github.com/orbs-network/oscoin-ledger-go/instrumentation/logfields"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage"
	ledgertypes "github.com/orbs-network/oscoin-ledger-go/types/ledger"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

func projectKey(id ProjectId) []byte {
	return id.Bytes()
}

// projectIndexEntryKey is the key of the n-th registered id; PROJECT_INDEX_KEY holds the entry count.
func projectIndexEntryKey(n uint32) []byte {
	key := make([]byte, len(PROJECT_INDEX_ENTRY_KEY_PREFIX)+4)
	copy(key, PROJECT_INDEX_ENTRY_KEY_PREFIX)
	binary.BigEndian.PutUint32(key[len(PROJECT_INDEX_ENTRY_KEY_PREFIX):], n)
	return key
}

func readProject(buf []byte) statestorage.Record {
	return ledgertypes.ProjectReader(buf)
}

func readProjectIndexEntry(buf []byte) statestorage.Record {
	return ledgertypes.ProjectIndexEntryReader(buf)
}

// RegisterProject derives the project id from the caller and the block height.
// Registering twice from the same caller within one block yields the same id
// and the later registration replaces the earlier one.
func (s *service) RegisterProject(fields ProjectFields) (ProjectId, error) {
	caller := s.context.CallerAccount()
	height := s.context.BlockHeight()
	id := digest.CalcProjectId(caller, height)

	project := (&ledgertypes.ProjectBuilder{
		Id:          id.Bytes(),
		Url:         fields.Url,
		Name:        fields.Name,
		Description: fields.Description,
		ImgUrl:      fields.ImgUrl,
		Members: []*ledgertypes.ProjectMemberBuilder{
			{Account: caller.Bytes()},
		},
	}).Build()
	if project == nil {
		return ProjectId{}, errors.Errorf("failed to build project %s", id.Hex())
	}

	_, alreadyRegistered, err := s.storage.Read(projectKey(id))
	if err != nil {
		return ProjectId{}, errors.Wrapf(err, "failed reading project %s", id.Hex())
	}

	if err := s.storage.WriteRecord(projectKey(id), project); err != nil {
		return ProjectId{}, errors.Wrapf(err, "failed writing project %s", id.Hex())
	}

	if !alreadyRegistered {
		if err := s.appendToIndex(id); err != nil {
			return ProjectId{}, err
		}
	}

	s.logger.Info("registered project", logfields.ProjectId(id), logfields.Caller(caller), logfields.BlockHeight(height))
	return id, nil
}

func (s *service) GetProject(id ProjectId) (*ledgertypes.Project, bool, error) {
	record, found, err := s.storage.ReadRecord(projectKey(id), readProject)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed reading project %s", id.Hex())
	}
	if !found {
		return nil, false, nil
	}
	return record.(*ledgertypes.Project), true, nil
}

// ListProjects returns each indexed project once, in registration order.
func (s *service) ListProjects() ([]*ledgertypes.Project, error) {
	count, err := s.indexSize()
	if err != nil {
		return nil, err
	}

	max := s.config.LedgerListProjectsMaxResults()
	if count > max {
		s.logger.Info("project list truncated", log.Uint32("indexed", count), log.Uint32("max-results", max))
		count = max
	}

	seen := make(map[ProjectId]bool, count)
	projects := make([]*ledgertypes.Project, 0, count)
	for n := uint32(0); n < count; n++ {
		id, err := s.readIndexEntry(n)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		project, found, err := s.GetProject(id)
		if err != nil {
			return nil, err
		}
		if !found {
			s.logger.Info("indexed project has no record, skipping", logfields.ProjectId(id))
			continue
		}
		projects = append(projects, project)
	}

	return projects, nil
}

func (s *service) indexSize() (uint32, error) {
	count, _, err := s.storage.ReadUint32(PROJECT_INDEX_KEY)
	return count, errors.Wrap(err, "failed reading project index size")
}

func (s *service) readIndexEntry(n uint32) (ProjectId, error) {
	record, found, err := s.storage.ReadRecord(projectIndexEntryKey(n), readProjectIndexEntry)
	if err != nil {
		return ProjectId{}, errors.Wrapf(err, "failed reading project index entry %d", n)
	}
	if !found {
		return ProjectId{}, errors.Wrapf(statestorage.ErrCorruptRecord, "project index entry %d is missing", n)
	}

	entry := record.(*ledgertypes.ProjectIndexEntry)
	if len(entry.ProjectId()) != common.AddressLength {
		return ProjectId{}, errors.Wrapf(statestorage.ErrCorruptRecord, "project index entry %d holds an id of %d bytes", n, len(entry.ProjectId()))
	}
	return common.BytesToAddress(entry.ProjectId()), nil
}

// appendToIndex writes one entry record and bumps the count, independent of how many projects exist.
func (s *service) appendToIndex(id ProjectId) error {
	count, err := s.indexSize()
	if err != nil {
		return err
	}

	entry := (&ledgertypes.ProjectIndexEntryBuilder{ProjectId: id.Bytes()}).Build()
	if entry == nil {
		return errors.Errorf("failed to build project index entry for %s", id.Hex())
	}
	if err := s.storage.WriteRecord(projectIndexEntryKey(count), entry); err != nil {
		return errors.Wrapf(err, "failed writing project index entry %d", count)
	}
	return errors.Wrap(s.storage.WriteUint32(PROJECT_INDEX_KEY, count+1), "failed writing project index size")
}
