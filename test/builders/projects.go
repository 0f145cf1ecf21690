// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"github.com/orbs-network/oscoin-ledger-go/services/ledger"
)

// ledger.ProjectFields

type project struct {
	fields ledger.ProjectFields
}

func Project() *project {
	return &project{
		fields: ledger.ProjectFields{
			Url:         "https://github.com/oscoin/oscoin-ledger",
			Name:        "oscoin ledger",
			Description: "reference ledger for the oscoin network",
			ImgUrl:      "https://avatars.githubusercontent.com/u/oscoin",
		},
	}
}

func (p *project) WithUrl(url string) *project {
	p.fields.Url = url
	return p
}

func (p *project) WithName(name string) *project {
	p.fields.Name = name
	return p
}

func (p *project) WithDescription(description string) *project {
	p.fields.Description = description
	return p
}

func (p *project) WithImgUrl(imgUrl string) *project {
	p.fields.ImgUrl = imgUrl
	return p
}

func (p *project) Fields() ledger.ProjectFields {
	return p.fields
}
