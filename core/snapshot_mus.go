// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the index snapshot types. These are small enough to
// compose by hand against the mus-go primitives instead of generating them.
var (
	IDMUS             = idSer{}
	HospitalRecordMUS = hospitalRecordSer{}
	TermWeightMUS     = termWeightSer{}
	DocumentVectorMUS = documentVectorSer{}
	VocabEntryMUS     = vocabEntrySer{}
	IndexSnapshotMUS  = indexSnapshotSer{}
)

type idSer struct{}

func (idSer) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idSer) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idSer) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (idSer) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

type hospitalRecordSer struct{}

func (hospitalRecordSer) Marshal(r HospitalRecord, bs []byte) (n int) {
	n = ord.String.Marshal(r.Name, bs)
	n += ord.String.Marshal(r.City, bs[n:])
	n += ord.String.Marshal(r.Address, bs[n:])
	n += varint.Int.Marshal(r.StableIndex, bs[n:])
	return
}

func (hospitalRecordSer) Unmarshal(bs []byte) (r HospitalRecord, n int, err error) {
	var n1 int
	r.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	r.City, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Address, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.StableIndex, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (hospitalRecordSer) Size(r HospitalRecord) (size int) {
	size = ord.String.Size(r.Name)
	size += ord.String.Size(r.City)
	size += ord.String.Size(r.Address)
	size += varint.Int.Size(r.StableIndex)
	return
}

func (hospitalRecordSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

type termWeightSer struct{}

func (termWeightSer) Marshal(t TermWeight, bs []byte) (n int) {
	n = varint.Int.Marshal(t.Slot, bs)
	n += raw.Float64.Marshal(t.Weight, bs[n:])
	return
}

func (termWeightSer) Unmarshal(bs []byte) (t TermWeight, n int, err error) {
	var n1 int
	t.Slot, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	t.Weight, n1, err = raw.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (termWeightSer) Size(t TermWeight) (size int) {
	return varint.Int.Size(t.Slot) + raw.Float64.Size(t.Weight)
}

func (termWeightSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	n1, err = raw.Float64.Skip(bs[n:])
	n += n1
	return
}

type documentVectorSer struct{}

func (documentVectorSer) Marshal(v DocumentVector, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v.Terms), bs)
	for _, t := range v.Terms {
		n += TermWeightMUS.Marshal(t, bs[n:])
	}
	n += raw.Float64.Marshal(v.Norm, bs[n:])
	return
}

func (documentVectorSer) Unmarshal(bs []byte) (v DocumentVector, n int, err error) {
	var n1 int
	var count int
	count, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	if count > 0 {
		v.Terms = make([]TermWeight, count)
		for i := 0; i < count; i++ {
			v.Terms[i], n1, err = TermWeightMUS.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	v.Norm, n1, err = raw.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (documentVectorSer) Size(v DocumentVector) (size int) {
	size = varint.Int.Size(len(v.Terms))
	for _, t := range v.Terms {
		size += TermWeightMUS.Size(t)
	}
	size += raw.Float64.Size(v.Norm)
	return
}

func (documentVectorSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	var count int
	count, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	for i := 0; i < count; i++ {
		n1, err = TermWeightMUS.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = raw.Float64.Skip(bs[n:])
	n += n1
	return
}

type vocabEntrySer struct{}

func (vocabEntrySer) Marshal(e VocabEntry, bs []byte) (n int) {
	n = ord.String.Marshal(e.Term, bs)
	n += varint.Int.Marshal(e.Slot, bs[n:])
	n += raw.Float64.Marshal(e.IDF, bs[n:])
	return
}

func (vocabEntrySer) Unmarshal(bs []byte) (e VocabEntry, n int, err error) {
	var n1 int
	e.Term, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	e.Slot, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.IDF, n1, err = raw.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (vocabEntrySer) Size(e VocabEntry) (size int) {
	return ord.String.Size(e.Term) + varint.Int.Size(e.Slot) + raw.Float64.Size(e.IDF)
}

func (vocabEntrySer) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.Float64.Skip(bs[n:])
	n += n1
	return
}

type indexSnapshotSer struct{}

func (indexSnapshotSer) Marshal(s IndexSnapshot, bs []byte) (n int) {
	n = IDMUS.Marshal(s.CatalogID, bs)
	n += varint.Int.Marshal(len(s.Records), bs[n:])
	for _, r := range s.Records {
		n += HospitalRecordMUS.Marshal(r, bs[n:])
	}
	n += varint.Int.Marshal(len(s.Documents), bs[n:])
	for _, d := range s.Documents {
		n += ord.String.Marshal(d, bs[n:])
	}
	n += varint.Int.Marshal(len(s.Vocabulary), bs[n:])
	for _, e := range s.Vocabulary {
		n += VocabEntryMUS.Marshal(e, bs[n:])
	}
	n += varint.Int.Marshal(len(s.Vectors), bs[n:])
	for _, v := range s.Vectors {
		n += DocumentVectorMUS.Marshal(v, bs[n:])
	}
	return
}

func (indexSnapshotSer) Unmarshal(bs []byte) (s IndexSnapshot, n int, err error) {
	var n1 int
	var count int
	s.CatalogID, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > 0 {
		s.Records = make([]HospitalRecord, count)
		for i := 0; i < count; i++ {
			s.Records[i], n1, err = HospitalRecordMUS.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > 0 {
		s.Documents = make([]string, count)
		for i := 0; i < count; i++ {
			s.Documents[i], n1, err = ord.String.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > 0 {
		s.Vocabulary = make([]VocabEntry, count)
		for i := 0; i < count; i++ {
			s.Vocabulary[i], n1, err = VocabEntryMUS.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > 0 {
		s.Vectors = make([]DocumentVector, count)
		for i := 0; i < count; i++ {
			s.Vectors[i], n1, err = DocumentVectorMUS.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	return
}

func (indexSnapshotSer) Size(s IndexSnapshot) (size int) {
	size = IDMUS.Size(s.CatalogID)
	size += varint.Int.Size(len(s.Records))
	for _, r := range s.Records {
		size += HospitalRecordMUS.Size(r)
	}
	size += varint.Int.Size(len(s.Documents))
	for _, d := range s.Documents {
		size += ord.String.Size(d)
	}
	size += varint.Int.Size(len(s.Vocabulary))
	for _, e := range s.Vocabulary {
		size += VocabEntryMUS.Size(e)
	}
	size += varint.Int.Size(len(s.Vectors))
	for _, v := range s.Vectors {
		size += DocumentVectorMUS.Size(v)
	}
	return
}

func (indexSnapshotSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	var count int
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < count; i++ {
		n1, err = HospitalRecordMUS.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < count; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < count; i++ {
		n1, err = VocabEntryMUS.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < count; i++ {
		n1, err = DocumentVectorMUS.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}
