// AUTO GENERATED FILE (by membufc proto compiler v0.4.0)
package ledger

import (
	"bytes"
	"fmt"
	"github.com/orbs-network/membuffers/go"
)

/////////////////////////////////////////////////////////////////////////////
// message ProjectMember

// reader

type ProjectMember struct {
	// Account []byte

	// internal
	// implements membuffers.Message
	_message membuffers.InternalMessage
}

func (x *ProjectMember) String() string {
	if x == nil {
		return "<nil>"
	}
	return fmt.Sprintf("{Account:%s,}", x.StringAccount())
}

var _ProjectMember_Scheme = []membuffers.FieldType{membuffers.TypeBytes}
var _ProjectMember_Unions = [][]membuffers.FieldType{}

func ProjectMemberReader(buf []byte) *ProjectMember {
	x := &ProjectMember{}
	x._message.Init(buf, membuffers.Offset(len(buf)), _ProjectMember_Scheme, _ProjectMember_Unions)
	return x
}

func (x *ProjectMember) IsValid() bool {
	return x._message.IsValid()
}

func (x *ProjectMember) Raw() []byte {
	return x._message.RawBuffer()
}

func (x *ProjectMember) Equal(y *ProjectMember) bool {
	if x == nil && y == nil {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return bytes.Equal(x.Raw(), y.Raw())
}

func (x *ProjectMember) Account() []byte {
	return x._message.GetBytes(0)
}

func (x *ProjectMember) RawAccount() []byte {
	return x._message.RawBufferForField(0, 0)
}

func (x *ProjectMember) RawAccountWithHeader() []byte {
	return x._message.RawBufferWithHeaderForField(0, 0)
}

func (x *ProjectMember) MutateAccount(v []byte) error {
	return x._message.SetBytes(0, v)
}

func (x *ProjectMember) StringAccount() string {
	return fmt.Sprintf("%x", x.Account())
}

// builder

type ProjectMemberBuilder struct {
	Account []byte

	// internal
	// implements membuffers.Builder
	_builder               membuffers.InternalBuilder
	_overrideWithRawBuffer []byte
}

func (w *ProjectMemberBuilder) Write(buf []byte) (err error) {
	if w == nil {
		return
	}
	w._builder.NotifyBuildStart()
	defer w._builder.NotifyBuildEnd()
	defer func() {
		if r := recover(); r != nil {
			err = &membuffers.ErrBufferOverrun{}
		}
	}()
	if w._overrideWithRawBuffer != nil {
		return w._builder.WriteOverrideWithRawBuffer(buf, w._overrideWithRawBuffer)
	}
	w._builder.Reset()
	w._builder.WriteBytes(buf, w.Account)
	return nil
}

func (w *ProjectMemberBuilder) HexDump(prefix string, offsetFromStart membuffers.Offset) (err error) {
	if w == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err = &membuffers.ErrBufferOverrun{}
		}
	}()
	w._builder.Reset()
	w._builder.HexDumpBytes(prefix, offsetFromStart, "ProjectMember.Account", w.Account)
	return nil
}

func (w *ProjectMemberBuilder) GetSize() membuffers.Offset {
	if w == nil {
		return 0
	}
	return w._builder.GetSize()
}

func (w *ProjectMemberBuilder) CalcRequiredSize() membuffers.Offset {
	if w == nil {
		return 0
	}
	w.Write(nil)
	return w._builder.GetSize()
}

func (w *ProjectMemberBuilder) Build() *ProjectMember {
	buf := make([]byte, w.CalcRequiredSize())
	if w.Write(buf) != nil {
		return nil
	}
	return ProjectMemberReader(buf)
}

func ProjectMemberBuilderFromRaw(raw []byte) *ProjectMemberBuilder {
	return &ProjectMemberBuilder{_overrideWithRawBuffer: raw}
}

/////////////////////////////////////////////////////////////////////////////
// message Project

// reader

type Project struct {
	// Id []byte
	// Url string
	// Name string
	// Description string
	// ImgUrl string
	// Members []ProjectMember

	// internal
	// implements membuffers.Message
	_message membuffers.InternalMessage
}

func (x *Project) String() string {
	if x == nil {
		return "<nil>"
	}
	return fmt.Sprintf("{Id:%s,Url:%s,Name:%s,Description:%s,ImgUrl:%s,Members:%s,}", x.StringId(), x.StringUrl(), x.StringName(), x.StringDescription(), x.StringImgUrl(), x.StringMembers())
}

var _Project_Scheme = []membuffers.FieldType{membuffers.TypeBytes, membuffers.TypeString, membuffers.TypeString, membuffers.TypeString, membuffers.TypeString, membuffers.TypeMessageArray}
var _Project_Unions = [][]membuffers.FieldType{}

func ProjectReader(buf []byte) *Project {
	x := &Project{}
	x._message.Init(buf, membuffers.Offset(len(buf)), _Project_Scheme, _Project_Unions)
	return x
}

func (x *Project) IsValid() bool {
	return x._message.IsValid()
}

func (x *Project) Raw() []byte {
	return x._message.RawBuffer()
}

func (x *Project) Equal(y *Project) bool {
	if x == nil && y == nil {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return bytes.Equal(x.Raw(), y.Raw())
}

func (x *Project) Id() []byte {
	return x._message.GetBytes(0)
}

func (x *Project) RawId() []byte {
	return x._message.RawBufferForField(0, 0)
}

func (x *Project) RawIdWithHeader() []byte {
	return x._message.RawBufferWithHeaderForField(0, 0)
}

func (x *Project) MutateId(v []byte) error {
	return x._message.SetBytes(0, v)
}

func (x *Project) StringId() string {
	return fmt.Sprintf("%x", x.Id())
}

func (x *Project) Url() string {
	return x._message.GetString(1)
}

func (x *Project) RawUrl() []byte {
	return x._message.RawBufferForField(1, 0)
}

func (x *Project) RawUrlWithHeader() []byte {
	return x._message.RawBufferWithHeaderForField(1, 0)
}

func (x *Project) MutateUrl(v string) error {
	return x._message.SetString(1, v)
}

func (x *Project) StringUrl() string {
	return fmt.Sprintf("%s", x.Url())
}

func (x *Project) Name() string {
	return x._message.GetString(2)
}

func (x *Project) RawName() []byte {
	return x._message.RawBufferForField(2, 0)
}

func (x *Project) RawNameWithHeader() []byte {
	return x._message.RawBufferWithHeaderForField(2, 0)
}

func (x *Project) MutateName(v string) error {
	return x._message.SetString(2, v)
}

func (x *Project) StringName() string {
	return fmt.Sprintf("%s", x.Name())
}

func (x *Project) Description() string {
	return x._message.GetString(3)
}

func (x *Project) RawDescription() []byte {
	return x._message.RawBufferForField(3, 0)
}

func (x *Project) RawDescriptionWithHeader() []byte {
	return x._message.RawBufferWithHeaderForField(3, 0)
}

func (x *Project) MutateDescription(v string) error {
	return x._message.SetString(3, v)
}

func (x *Project) StringDescription() string {
	return fmt.Sprintf("%s", x.Description())
}

func (x *Project) ImgUrl() string {
	return x._message.GetString(4)
}

func (x *Project) RawImgUrl() []byte {
	return x._message.RawBufferForField(4, 0)
}

func (x *Project) RawImgUrlWithHeader() []byte {
	return x._message.RawBufferWithHeaderForField(4, 0)
}

func (x *Project) MutateImgUrl(v string) error {
	return x._message.SetString(4, v)
}

func (x *Project) StringImgUrl() string {
	return fmt.Sprintf("%s", x.ImgUrl())
}

func (x *Project) MembersIterator() *ProjectMembersIterator {
	return &ProjectMembersIterator{iterator: x._message.GetMessageArrayIterator(5)}
}

type ProjectMembersIterator struct {
	iterator *membuffers.Iterator
}

func (i *ProjectMembersIterator) HasNext() bool {
	return i.iterator.HasNext()
}

func (i *ProjectMembersIterator) NextMembers() *ProjectMember {
	b, s := i.iterator.NextMessage()
	return ProjectMemberReader(b[:s])
}

func (x *Project) RawMembersArray() []byte {
	return x._message.RawBufferForField(5, 0)
}

func (x *Project) RawMembersArrayWithHeader() []byte {
	return x._message.RawBufferWithHeaderForField(5, 0)
}

func (x *Project) StringMembers() (res string) {
	res = "["
	for i := x.MembersIterator(); i.HasNext(); {
		res += i.NextMembers().String() + ","
	}
	res += "]"
	return
}

// builder

type ProjectBuilder struct {
	Id          []byte
	Url         string
	Name        string
	Description string
	ImgUrl      string
	Members     []*ProjectMemberBuilder

	// internal
	// implements membuffers.Builder
	_builder               membuffers.InternalBuilder
	_overrideWithRawBuffer []byte
}

func (w *ProjectBuilder) arrayOfMembers() []membuffers.MessageWriter {
	res := make([]membuffers.MessageWriter, len(w.Members))
	for i, v := range w.Members {
		res[i] = v
	}
	return res
}

func (w *ProjectBuilder) Write(buf []byte) (err error) {
	if w == nil {
		return
	}
	w._builder.NotifyBuildStart()
	defer w._builder.NotifyBuildEnd()
	defer func() {
		if r := recover(); r != nil {
			err = &membuffers.ErrBufferOverrun{}
		}
	}()
	if w._overrideWithRawBuffer != nil {
		return w._builder.WriteOverrideWithRawBuffer(buf, w._overrideWithRawBuffer)
	}
	w._builder.Reset()
	w._builder.WriteBytes(buf, w.Id)
	w._builder.WriteString(buf, w.Url)
	w._builder.WriteString(buf, w.Name)
	w._builder.WriteString(buf, w.Description)
	w._builder.WriteString(buf, w.ImgUrl)
	err = w._builder.WriteMessageArray(buf, w.arrayOfMembers())
	if err != nil {
		return
	}
	return nil
}

func (w *ProjectBuilder) HexDump(prefix string, offsetFromStart membuffers.Offset) (err error) {
	if w == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err = &membuffers.ErrBufferOverrun{}
		}
	}()
	w._builder.Reset()
	w._builder.HexDumpBytes(prefix, offsetFromStart, "Project.Id", w.Id)
	w._builder.HexDumpString(prefix, offsetFromStart, "Project.Url", w.Url)
	w._builder.HexDumpString(prefix, offsetFromStart, "Project.Name", w.Name)
	w._builder.HexDumpString(prefix, offsetFromStart, "Project.Description", w.Description)
	w._builder.HexDumpString(prefix, offsetFromStart, "Project.ImgUrl", w.ImgUrl)
	err = w._builder.HexDumpMessageArray(prefix, offsetFromStart, "Project.Members", w.arrayOfMembers())
	if err != nil {
		return
	}
	return nil
}

func (w *ProjectBuilder) GetSize() membuffers.Offset {
	if w == nil {
		return 0
	}
	return w._builder.GetSize()
}

func (w *ProjectBuilder) CalcRequiredSize() membuffers.Offset {
	if w == nil {
		return 0
	}
	w.Write(nil)
	return w._builder.GetSize()
}

func (w *ProjectBuilder) Build() *Project {
	buf := make([]byte, w.CalcRequiredSize())
	if w.Write(buf) != nil {
		return nil
	}
	return ProjectReader(buf)
}

func ProjectBuilderFromRaw(raw []byte) *ProjectBuilder {
	return &ProjectBuilder{_overrideWithRawBuffer: raw}
}

/////////////////////////////////////////////////////////////////////////////
// message ProjectIndexEntry

// reader

type ProjectIndexEntry struct {
	// ProjectId []byte

	// internal
	// implements membuffers.Message
	_message membuffers.InternalMessage
}

func (x *ProjectIndexEntry) String() string {
	if x == nil {
		return "<nil>"
	}
	return fmt.Sprintf("{ProjectId:%s,}", x.StringProjectId())
}

var _ProjectIndexEntry_Scheme = []membuffers.FieldType{membuffers.TypeBytes}
var _ProjectIndexEntry_Unions = [][]membuffers.FieldType{}

func ProjectIndexEntryReader(buf []byte) *ProjectIndexEntry {
	x := &ProjectIndexEntry{}
	x._message.Init(buf, membuffers.Offset(len(buf)), _ProjectIndexEntry_Scheme, _ProjectIndexEntry_Unions)
	return x
}

func (x *ProjectIndexEntry) IsValid() bool {
	return x._message.IsValid()
}

func (x *ProjectIndexEntry) Raw() []byte {
	return x._message.RawBuffer()
}

func (x *ProjectIndexEntry) Equal(y *ProjectIndexEntry) bool {
	if x == nil && y == nil {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return bytes.Equal(x.Raw(), y.Raw())
}

func (x *ProjectIndexEntry) ProjectId() []byte {
	return x._message.GetBytes(0)
}

func (x *ProjectIndexEntry) RawProjectId() []byte {
	return x._message.RawBufferForField(0, 0)
}

func (x *ProjectIndexEntry) RawProjectIdWithHeader() []byte {
	return x._message.RawBufferWithHeaderForField(0, 0)
}

func (x *ProjectIndexEntry) MutateProjectId(v []byte) error {
	return x._message.SetBytes(0, v)
}

func (x *ProjectIndexEntry) StringProjectId() string {
	return fmt.Sprintf("%x", x.ProjectId())
}

// builder

type ProjectIndexEntryBuilder struct {
	ProjectId []byte

	// internal
	// implements membuffers.Builder
	_builder               membuffers.InternalBuilder
	_overrideWithRawBuffer []byte
}

func (w *ProjectIndexEntryBuilder) Write(buf []byte) (err error) {
	if w == nil {
		return
	}
	w._builder.NotifyBuildStart()
	defer w._builder.NotifyBuildEnd()
	defer func() {
		if r := recover(); r != nil {
			err = &membuffers.ErrBufferOverrun{}
		}
	}()
	if w._overrideWithRawBuffer != nil {
		return w._builder.WriteOverrideWithRawBuffer(buf, w._overrideWithRawBuffer)
	}
	w._builder.Reset()
	w._builder.WriteBytes(buf, w.ProjectId)
	return nil
}

func (w *ProjectIndexEntryBuilder) HexDump(prefix string, offsetFromStart membuffers.Offset) (err error) {
	if w == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err = &membuffers.ErrBufferOverrun{}
		}
	}()
	w._builder.Reset()
	w._builder.HexDumpBytes(prefix, offsetFromStart, "ProjectIndexEntry.ProjectId", w.ProjectId)
	return nil
}

func (w *ProjectIndexEntryBuilder) GetSize() membuffers.Offset {
	if w == nil {
		return 0
	}
	return w._builder.GetSize()
}

func (w *ProjectIndexEntryBuilder) CalcRequiredSize() membuffers.Offset {
	if w == nil {
		return 0
	}
	w.Write(nil)
	return w._builder.GetSize()
}

func (w *ProjectIndexEntryBuilder) Build() *ProjectIndexEntry {
	buf := make([]byte, w.CalcRequiredSize())
	if w.Write(buf) != nil {
		return nil
	}
	return ProjectIndexEntryReader(buf)
}

func ProjectIndexEntryBuilderFromRaw(raw []byte) *ProjectIndexEntryBuilder {
	return &ProjectIndexEntryBuilder{_overrideWithRawBuffer: raw}
}
