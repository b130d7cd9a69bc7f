// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: replay/v1/replay.proto

package replayv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// StepKind marks the position of a step within an episode.
type StepKind int32

const (
	StepKind_STEP_KIND_UNSPECIFIED StepKind = 0
	StepKind_STEP_KIND_FIRST       StepKind = 1
	StepKind_STEP_KIND_MID         StepKind = 2
	// Terminal step of an episode. Observers treat this as the episode
	// boundary marker.
	StepKind_STEP_KIND_LAST StepKind = 3
)

// Enum value maps for StepKind.
var (
	StepKind_name = map[int32]string{
		0: "STEP_KIND_UNSPECIFIED",
		1: "STEP_KIND_FIRST",
		2: "STEP_KIND_MID",
		3: "STEP_KIND_LAST",
	}
	StepKind_value = map[string]int32{
		"STEP_KIND_UNSPECIFIED": 0,
		"STEP_KIND_FIRST":       1,
		"STEP_KIND_MID":         2,
		"STEP_KIND_LAST":        3,
	}
)

func (x StepKind) Enum() *StepKind {
	p := new(StepKind)
	*p = x
	return p
}

func (x StepKind) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (StepKind) Descriptor() protoreflect.EnumDescriptor {
	return file_replay_v1_replay_proto_enumTypes[0].Descriptor()
}

func (StepKind) Type() protoreflect.EnumType {
	return &file_replay_v1_replay_proto_enumTypes[0]
}

func (x StepKind) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use StepKind.Descriptor instead.
func (StepKind) EnumDescriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{0}
}

// Tensor is a flat float tensor with a shape, matching how trainers
// consume observations.
type Tensor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Data          []float32              `protobuf:"fixed32,1,rep,packed,name=data,proto3" json:"data,omitempty"`
	Shape         []int32                `protobuf:"varint,2,rep,packed,name=shape,proto3" json:"shape,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Tensor) Reset() {
	*x = Tensor{}
	mi := &file_replay_v1_replay_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Tensor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Tensor) ProtoMessage() {}

func (x *Tensor) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Tensor.ProtoReflect.Descriptor instead.
func (*Tensor) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{0}
}

func (x *Tensor) GetData() []float32 {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *Tensor) GetShape() []int32 {
	if x != nil {
		return x.Shape
	}
	return nil
}

// Step is a single timestep of agent experience.
type Step struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          StepKind               `protobuf:"varint,1,opt,name=kind,proto3,enum=replay.v1.StepKind" json:"kind,omitempty"`
	Observation   *Tensor                `protobuf:"bytes,2,opt,name=observation,proto3" json:"observation,omitempty"`
	Action        int32                  `protobuf:"varint,3,opt,name=action,proto3" json:"action,omitempty"`
	Reward        float64                `protobuf:"fixed64,4,opt,name=reward,proto3" json:"reward,omitempty"`
	Discount      float64                `protobuf:"fixed64,5,opt,name=discount,proto3" json:"discount,omitempty"`
	CollectedAt   *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=collected_at,json=collectedAt,proto3" json:"collected_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Step) Reset() {
	*x = Step{}
	mi := &file_replay_v1_replay_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Step) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Step) ProtoMessage() {}

func (x *Step) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Step.ProtoReflect.Descriptor instead.
func (*Step) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{1}
}

func (x *Step) GetKind() StepKind {
	if x != nil {
		return x.Kind
	}
	return StepKind_STEP_KIND_UNSPECIFIED
}

func (x *Step) GetObservation() *Tensor {
	if x != nil {
		return x.Observation
	}
	return nil
}

func (x *Step) GetAction() int32 {
	if x != nil {
		return x.Action
	}
	return 0
}

func (x *Step) GetReward() float64 {
	if x != nil {
		return x.Reward
	}
	return 0
}

func (x *Step) GetDiscount() float64 {
	if x != nil {
		return x.Discount
	}
	return 0
}

func (x *Step) GetCollectedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CollectedAt
	}
	return nil
}

// CreateItem registers an item over the most recent num_steps appended
// steps of the current writer sequence.
type CreateItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Table         string                 `protobuf:"bytes,1,opt,name=table,proto3" json:"table,omitempty"`
	NumSteps      int32                  `protobuf:"varint,2,opt,name=num_steps,json=numSteps,proto3" json:"num_steps,omitempty"`
	Priority      float64                `protobuf:"fixed64,3,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateItem) Reset() {
	*x = CreateItem{}
	mi := &file_replay_v1_replay_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateItem) ProtoMessage() {}

func (x *CreateItem) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateItem.ProtoReflect.Descriptor instead.
func (*CreateItem) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{2}
}

func (x *CreateItem) GetTable() string {
	if x != nil {
		return x.Table
	}
	return ""
}

func (x *CreateItem) GetNumSteps() int32 {
	if x != nil {
		return x.NumSteps
	}
	return 0
}

func (x *CreateItem) GetPriority() float64 {
	if x != nil {
		return x.Priority
	}
	return 0
}

// StartSequence opens a writer sequence and fixes its window size. It must
// be the first message of an insert stream.
type StartSequence struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	MaxSequenceLength int32                  `protobuf:"varint,1,opt,name=max_sequence_length,json=maxSequenceLength,proto3" json:"max_sequence_length,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *StartSequence) Reset() {
	*x = StartSequence{}
	mi := &file_replay_v1_replay_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartSequence) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartSequence) ProtoMessage() {}

func (x *StartSequence) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartSequence.ProtoReflect.Descriptor instead.
func (*StartSequence) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{3}
}

func (x *StartSequence) GetMaxSequenceLength() int32 {
	if x != nil {
		return x.MaxSequenceLength
	}
	return 0
}

// InsertRequest is one command in a writer's insert stream.
type InsertRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Payload:
	//
	//	*InsertRequest_Start
	//	*InsertRequest_Append
	//	*InsertRequest_CreateItem
	Payload       isInsertRequest_Payload `protobuf_oneof:"payload"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InsertRequest) Reset() {
	*x = InsertRequest{}
	mi := &file_replay_v1_replay_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InsertRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InsertRequest) ProtoMessage() {}

func (x *InsertRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InsertRequest.ProtoReflect.Descriptor instead.
func (*InsertRequest) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{4}
}

func (x *InsertRequest) GetPayload() isInsertRequest_Payload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *InsertRequest) GetStart() *StartSequence {
	if x != nil {
		if x, ok := x.Payload.(*InsertRequest_Start); ok {
			return x.Start
		}
	}
	return nil
}

func (x *InsertRequest) GetAppend() *Step {
	if x != nil {
		if x, ok := x.Payload.(*InsertRequest_Append); ok {
			return x.Append
		}
	}
	return nil
}

func (x *InsertRequest) GetCreateItem() *CreateItem {
	if x != nil {
		if x, ok := x.Payload.(*InsertRequest_CreateItem); ok {
			return x.CreateItem
		}
	}
	return nil
}

type isInsertRequest_Payload interface {
	isInsertRequest_Payload()
}

type InsertRequest_Start struct {
	Start *StartSequence `protobuf:"bytes,1,opt,name=start,proto3,oneof"`
}

type InsertRequest_Append struct {
	Append *Step `protobuf:"bytes,2,opt,name=append,proto3,oneof"`
}

type InsertRequest_CreateItem struct {
	CreateItem *CreateItem `protobuf:"bytes,3,opt,name=create_item,json=createItem,proto3,oneof"`
}

func (*InsertRequest_Start) isInsertRequest_Payload() {}

func (*InsertRequest_Append) isInsertRequest_Payload() {}

func (*InsertRequest_CreateItem) isInsertRequest_Payload() {}

// InsertStreamResponse summarizes a completed insert stream.
type InsertStreamResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StepsAppended int64                  `protobuf:"varint,1,opt,name=steps_appended,json=stepsAppended,proto3" json:"steps_appended,omitempty"`
	ItemsCreated  int64                  `protobuf:"varint,2,opt,name=items_created,json=itemsCreated,proto3" json:"items_created,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InsertStreamResponse) Reset() {
	*x = InsertStreamResponse{}
	mi := &file_replay_v1_replay_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InsertStreamResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InsertStreamResponse) ProtoMessage() {}

func (x *InsertStreamResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InsertStreamResponse.ProtoReflect.Descriptor instead.
func (*InsertStreamResponse) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{5}
}

func (x *InsertStreamResponse) GetStepsAppended() int64 {
	if x != nil {
		return x.StepsAppended
	}
	return 0
}

func (x *InsertStreamResponse) GetItemsCreated() int64 {
	if x != nil {
		return x.ItemsCreated
	}
	return 0
}

type SampleRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Table string                 `protobuf:"bytes,1,opt,name=table,proto3" json:"table,omitempty"`
	// Number of items to stream back.
	NumSamples    int32 `protobuf:"varint,2,opt,name=num_samples,json=numSamples,proto3" json:"num_samples,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SampleRequest) Reset() {
	*x = SampleRequest{}
	mi := &file_replay_v1_replay_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SampleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SampleRequest) ProtoMessage() {}

func (x *SampleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SampleRequest.ProtoReflect.Descriptor instead.
func (*SampleRequest) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{6}
}

func (x *SampleRequest) GetTable() string {
	if x != nil {
		return x.Table
	}
	return ""
}

func (x *SampleRequest) GetNumSamples() int32 {
	if x != nil {
		return x.NumSamples
	}
	return 0
}

// SampledItem is one sampled table entry together with its bookkeeping.
type SampledItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Table         string                 `protobuf:"bytes,2,opt,name=table,proto3" json:"table,omitempty"`
	Priority      float64                `protobuf:"fixed64,3,opt,name=priority,proto3" json:"priority,omitempty"`
	TimesSampled  int32                  `protobuf:"varint,4,opt,name=times_sampled,json=timesSampled,proto3" json:"times_sampled,omitempty"`
	Steps         []*Step                `protobuf:"bytes,5,rep,name=steps,proto3" json:"steps,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SampledItem) Reset() {
	*x = SampledItem{}
	mi := &file_replay_v1_replay_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SampledItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SampledItem) ProtoMessage() {}

func (x *SampledItem) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SampledItem.ProtoReflect.Descriptor instead.
func (*SampledItem) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{7}
}

func (x *SampledItem) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *SampledItem) GetTable() string {
	if x != nil {
		return x.Table
	}
	return ""
}

func (x *SampledItem) GetPriority() float64 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *SampledItem) GetTimesSampled() int32 {
	if x != nil {
		return x.TimesSampled
	}
	return 0
}

func (x *SampledItem) GetSteps() []*Step {
	if x != nil {
		return x.Steps
	}
	return nil
}

type SampleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *SampledItem           `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SampleResponse) Reset() {
	*x = SampleResponse{}
	mi := &file_replay_v1_replay_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SampleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SampleResponse) ProtoMessage() {}

func (x *SampleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SampleResponse.ProtoReflect.Descriptor instead.
func (*SampleResponse) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{8}
}

func (x *SampleResponse) GetItem() *SampledItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type MutatePrioritiesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Table         string                 `protobuf:"bytes,1,opt,name=table,proto3" json:"table,omitempty"`
	Updates       map[string]float64     `protobuf:"bytes,2,rep,name=updates,proto3" json:"updates,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	Deletes       []string               `protobuf:"bytes,3,rep,name=deletes,proto3" json:"deletes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MutatePrioritiesRequest) Reset() {
	*x = MutatePrioritiesRequest{}
	mi := &file_replay_v1_replay_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MutatePrioritiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MutatePrioritiesRequest) ProtoMessage() {}

func (x *MutatePrioritiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MutatePrioritiesRequest.ProtoReflect.Descriptor instead.
func (*MutatePrioritiesRequest) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{9}
}

func (x *MutatePrioritiesRequest) GetTable() string {
	if x != nil {
		return x.Table
	}
	return ""
}

func (x *MutatePrioritiesRequest) GetUpdates() map[string]float64 {
	if x != nil {
		return x.Updates
	}
	return nil
}

func (x *MutatePrioritiesRequest) GetDeletes() []string {
	if x != nil {
		return x.Deletes
	}
	return nil
}

type MutatePrioritiesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Updated       int32                  `protobuf:"varint,1,opt,name=updated,proto3" json:"updated,omitempty"`
	Deleted       int32                  `protobuf:"varint,2,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MutatePrioritiesResponse) Reset() {
	*x = MutatePrioritiesResponse{}
	mi := &file_replay_v1_replay_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MutatePrioritiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MutatePrioritiesResponse) ProtoMessage() {}

func (x *MutatePrioritiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MutatePrioritiesResponse.ProtoReflect.Descriptor instead.
func (*MutatePrioritiesResponse) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{10}
}

func (x *MutatePrioritiesResponse) GetUpdated() int32 {
	if x != nil {
		return x.Updated
	}
	return 0
}

func (x *MutatePrioritiesResponse) GetDeleted() int32 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

type GetTableInfoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Table         string                 `protobuf:"bytes,1,opt,name=table,proto3" json:"table,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTableInfoRequest) Reset() {
	*x = GetTableInfoRequest{}
	mi := &file_replay_v1_replay_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTableInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTableInfoRequest) ProtoMessage() {}

func (x *GetTableInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTableInfoRequest.ProtoReflect.Descriptor instead.
func (*GetTableInfoRequest) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{11}
}

func (x *GetTableInfoRequest) GetTable() string {
	if x != nil {
		return x.Table
	}
	return ""
}

type TableInfo struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	CurrentSize     int64                  `protobuf:"varint,2,opt,name=current_size,json=currentSize,proto3" json:"current_size,omitempty"`
	MaxSize         int64                  `protobuf:"varint,3,opt,name=max_size,json=maxSize,proto3" json:"max_size,omitempty"`
	MaxTimesSampled int64                  `protobuf:"varint,4,opt,name=max_times_sampled,json=maxTimesSampled,proto3" json:"max_times_sampled,omitempty"`
	Sampler         string                 `protobuf:"bytes,5,opt,name=sampler,proto3" json:"sampler,omitempty"`
	Remover         string                 `protobuf:"bytes,6,opt,name=remover,proto3" json:"remover,omitempty"`
	MinSizeToSample int64                  `protobuf:"varint,7,opt,name=min_size_to_sample,json=minSizeToSample,proto3" json:"min_size_to_sample,omitempty"`
	TotalInserted   int64                  `protobuf:"varint,8,opt,name=total_inserted,json=totalInserted,proto3" json:"total_inserted,omitempty"`
	TotalSampled    int64                  `protobuf:"varint,9,opt,name=total_sampled,json=totalSampled,proto3" json:"total_sampled,omitempty"`
	TotalEvicted    int64                  `protobuf:"varint,10,opt,name=total_evicted,json=totalEvicted,proto3" json:"total_evicted,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *TableInfo) Reset() {
	*x = TableInfo{}
	mi := &file_replay_v1_replay_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TableInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TableInfo) ProtoMessage() {}

func (x *TableInfo) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TableInfo.ProtoReflect.Descriptor instead.
func (*TableInfo) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{12}
}

func (x *TableInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *TableInfo) GetCurrentSize() int64 {
	if x != nil {
		return x.CurrentSize
	}
	return 0
}

func (x *TableInfo) GetMaxSize() int64 {
	if x != nil {
		return x.MaxSize
	}
	return 0
}

func (x *TableInfo) GetMaxTimesSampled() int64 {
	if x != nil {
		return x.MaxTimesSampled
	}
	return 0
}

func (x *TableInfo) GetSampler() string {
	if x != nil {
		return x.Sampler
	}
	return ""
}

func (x *TableInfo) GetRemover() string {
	if x != nil {
		return x.Remover
	}
	return ""
}

func (x *TableInfo) GetMinSizeToSample() int64 {
	if x != nil {
		return x.MinSizeToSample
	}
	return 0
}

func (x *TableInfo) GetTotalInserted() int64 {
	if x != nil {
		return x.TotalInserted
	}
	return 0
}

func (x *TableInfo) GetTotalSampled() int64 {
	if x != nil {
		return x.TotalSampled
	}
	return 0
}

func (x *TableInfo) GetTotalEvicted() int64 {
	if x != nil {
		return x.TotalEvicted
	}
	return 0
}

type GetTableInfoResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Info          *TableInfo             `protobuf:"bytes,1,opt,name=info,proto3" json:"info,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTableInfoResponse) Reset() {
	*x = GetTableInfoResponse{}
	mi := &file_replay_v1_replay_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTableInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTableInfoResponse) ProtoMessage() {}

func (x *GetTableInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTableInfoResponse.ProtoReflect.Descriptor instead.
func (*GetTableInfoResponse) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{13}
}

func (x *GetTableInfoResponse) GetInfo() *TableInfo {
	if x != nil {
		return x.Info
	}
	return nil
}

var File_replay_v1_replay_proto protoreflect.FileDescriptor

const file_replay_v1_replay_proto_rawDesc = "" +
	"\n" +
	"\x16replay/v1/replay.proto\x12\treplay.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"2\n" +
	"\x06Tensor\x12\x12\n" +
	"\x04data\x18\x01 \x03(\x02R\x04data\x12\x14\n" +
	"\x05shape\x18\x02 \x03(\x05R\x05shape\"\xef\x01\n" +
	"\x04Step\x12'\n" +
	"\x04kind\x18\x01 \x01(\x0e2\x13.replay.v1.StepKindR\x04kind\x123\n" +
	"\vobservation\x18\x02 \x01(\v2\x11.replay.v1.TensorR\vobservation\x12\x16\n" +
	"\x06action\x18\x03 \x01(\x05R\x06action\x12\x16\n" +
	"\x06reward\x18\x04 \x01(\x01R\x06reward\x12\x1a\n" +
	"\bdiscount\x18\x05 \x01(\x01R\bdiscount\x12=\n" +
	"\fcollected_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\vcollectedAt\"[\n" +
	"\n" +
	"CreateItem\x12\x14\n" +
	"\x05table\x18\x01 \x01(\tR\x05table\x12\x1b\n" +
	"\tnum_steps\x18\x02 \x01(\x05R\bnumSteps\x12\x1a\n" +
	"\bpriority\x18\x03 \x01(\x01R\bpriority\"?\n" +
	"\rStartSequence\x12.\n" +
	"\x13max_sequence_length\x18\x01 \x01(\x05R\x11maxSequenceLength\"\xb1\x01\n" +
	"\rInsertRequest\x120\n" +
	"\x05start\x18\x01 \x01(\v2\x18.replay.v1.StartSequenceH\x00R\x05start\x12)\n" +
	"\x06append\x18\x02 \x01(\v2\x0f.replay.v1.StepH\x00R\x06append\x128\n" +
	"\vcreate_item\x18\x03 \x01(\v2\x15.replay.v1.CreateItemH\x00R\n" +
	"createItemB\t\n" +
	"\apayload\"b\n" +
	"\x14InsertStreamResponse\x12%\n" +
	"\x0esteps_appended\x18\x01 \x01(\x03R\rstepsAppended\x12#\n" +
	"\ritems_created\x18\x02 \x01(\x03R\fitemsCreated\"F\n" +
	"\rSampleRequest\x12\x14\n" +
	"\x05table\x18\x01 \x01(\tR\x05table\x12\x1f\n" +
	"\vnum_samples\x18\x02 \x01(\x05R\n" +
	"numSamples\"\xa4\x01\n" +
	"\vSampledItem\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\x12\x14\n" +
	"\x05table\x18\x02 \x01(\tR\x05table\x12\x1a\n" +
	"\bpriority\x18\x03 \x01(\x01R\bpriority\x12#\n" +
	"\rtimes_sampled\x18\x04 \x01(\x05R\ftimesSampled\x12%\n" +
	"\x05steps\x18\x05 \x03(\v2\x0f.replay.v1.StepR\x05steps\"<\n" +
	"\x0eSampleResponse\x12*\n" +
	"\x04item\x18\x01 \x01(\v2\x16.replay.v1.SampledItemR\x04item\"\xd0\x01\n" +
	"\x17MutatePrioritiesRequest\x12\x14\n" +
	"\x05table\x18\x01 \x01(\tR\x05table\x12I\n" +
	"\aupdates\x18\x02 \x03(\v2/.replay.v1.MutatePrioritiesRequest.UpdatesEntryR\aupdates\x12\x18\n" +
	"\adeletes\x18\x03 \x03(\tR\adeletes\x1a:\n" +
	"\fUpdatesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01\"N\n" +
	"\x18MutatePrioritiesResponse\x12\x18\n" +
	"\aupdated\x18\x01 \x01(\x05R\aupdated\x12\x18\n" +
	"\adeleted\x18\x02 \x01(\x05R\adeleted\"+\n" +
	"\x13GetTableInfoRequest\x12\x14\n" +
	"\x05table\x18\x01 \x01(\tR\x05table\"\xdb\x02\n" +
	"\tTableInfo\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12!\n" +
	"\fcurrent_size\x18\x02 \x01(\x03R\vcurrentSize\x12\x19\n" +
	"\bmax_size\x18\x03 \x01(\x03R\amaxSize\x12*\n" +
	"\x11max_times_sampled\x18\x04 \x01(\x03R\x0fmaxTimesSampled\x12\x18\n" +
	"\asampler\x18\x05 \x01(\tR\asampler\x12\x18\n" +
	"\aremover\x18\x06 \x01(\tR\aremover\x12+\n" +
	"\x12min_size_to_sample\x18\a \x01(\x03R\x0fminSizeToSample\x12%\n" +
	"\x0etotal_inserted\x18\b \x01(\x03R\rtotalInserted\x12#\n" +
	"\rtotal_sampled\x18\t \x01(\x03R\ftotalSampled\x12#\n" +
	"\rtotal_evicted\x18\n" +
	" \x01(\x03R\ftotalEvicted\"@\n" +
	"\x14GetTableInfoResponse\x12(\n" +
	"\x04info\x18\x01 \x01(\v2\x14.replay.v1.TableInfoR\x04info*a\n" +
	"\bStepKind\x12\x19\n" +
	"\x15STEP_KIND_UNSPECIFIED\x10\x00\x12\x13\n" +
	"\x0fSTEP_KIND_FIRST\x10\x01\x12\x11\n" +
	"\rSTEP_KIND_MID\x10\x02\x12\x12\n" +
	"\x0eSTEP_KIND_LAST\x10\x032\xcb\x02\n" +
	"\rReplayService\x12K\n" +
	"\fInsertStream\x12\x18.replay.v1.InsertRequest\x1a\x1f.replay.v1.InsertStreamResponse(\x01\x12?\n" +
	"\x06Sample\x12\x18.replay.v1.SampleRequest\x1a\x19.replay.v1.SampleResponse0\x01\x12[\n" +
	"\x10MutatePriorities\x12\".replay.v1.MutatePrioritiesRequest\x1a#.replay.v1.MutatePrioritiesResponse\x12O\n" +
	"\fGetTableInfo\x12\x1e.replay.v1.GetTableInfoRequest\x1a\x1f.replay.v1.GetTableInfoResponseBEZCgithub.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1;replayv1b\x06proto3"

var (
	file_replay_v1_replay_proto_rawDescOnce sync.Once
	file_replay_v1_replay_proto_rawDescData []byte
)

func file_replay_v1_replay_proto_rawDescGZIP() []byte {
	file_replay_v1_replay_proto_rawDescOnce.Do(func() {
		file_replay_v1_replay_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_replay_v1_replay_proto_rawDesc), len(file_replay_v1_replay_proto_rawDesc)))
	})
	return file_replay_v1_replay_proto_rawDescData
}

var file_replay_v1_replay_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_replay_v1_replay_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_replay_v1_replay_proto_goTypes = []any{
	(StepKind)(0),                    // 0: replay.v1.StepKind
	(*Tensor)(nil),                   // 1: replay.v1.Tensor
	(*Step)(nil),                     // 2: replay.v1.Step
	(*CreateItem)(nil),               // 3: replay.v1.CreateItem
	(*StartSequence)(nil),            // 4: replay.v1.StartSequence
	(*InsertRequest)(nil),            // 5: replay.v1.InsertRequest
	(*InsertStreamResponse)(nil),     // 6: replay.v1.InsertStreamResponse
	(*SampleRequest)(nil),            // 7: replay.v1.SampleRequest
	(*SampledItem)(nil),              // 8: replay.v1.SampledItem
	(*SampleResponse)(nil),           // 9: replay.v1.SampleResponse
	(*MutatePrioritiesRequest)(nil),  // 10: replay.v1.MutatePrioritiesRequest
	(*MutatePrioritiesResponse)(nil), // 11: replay.v1.MutatePrioritiesResponse
	(*GetTableInfoRequest)(nil),      // 12: replay.v1.GetTableInfoRequest
	(*TableInfo)(nil),                // 13: replay.v1.TableInfo
	(*GetTableInfoResponse)(nil),     // 14: replay.v1.GetTableInfoResponse
	nil,                              // 15: replay.v1.MutatePrioritiesRequest.UpdatesEntry
	(*timestamppb.Timestamp)(nil),    // 16: google.protobuf.Timestamp
}
var file_replay_v1_replay_proto_depIdxs = []int32{
	0,  // 0: replay.v1.Step.kind:type_name -> replay.v1.StepKind
	1,  // 1: replay.v1.Step.observation:type_name -> replay.v1.Tensor
	16, // 2: replay.v1.Step.collected_at:type_name -> google.protobuf.Timestamp
	4,  // 3: replay.v1.InsertRequest.start:type_name -> replay.v1.StartSequence
	2,  // 4: replay.v1.InsertRequest.append:type_name -> replay.v1.Step
	3,  // 5: replay.v1.InsertRequest.create_item:type_name -> replay.v1.CreateItem
	2,  // 6: replay.v1.SampledItem.steps:type_name -> replay.v1.Step
	8,  // 7: replay.v1.SampleResponse.item:type_name -> replay.v1.SampledItem
	15, // 8: replay.v1.MutatePrioritiesRequest.updates:type_name -> replay.v1.MutatePrioritiesRequest.UpdatesEntry
	13, // 9: replay.v1.GetTableInfoResponse.info:type_name -> replay.v1.TableInfo
	5,  // 10: replay.v1.ReplayService.InsertStream:input_type -> replay.v1.InsertRequest
	7,  // 11: replay.v1.ReplayService.Sample:input_type -> replay.v1.SampleRequest
	10, // 12: replay.v1.ReplayService.MutatePriorities:input_type -> replay.v1.MutatePrioritiesRequest
	12, // 13: replay.v1.ReplayService.GetTableInfo:input_type -> replay.v1.GetTableInfoRequest
	6,  // 14: replay.v1.ReplayService.InsertStream:output_type -> replay.v1.InsertStreamResponse
	9,  // 15: replay.v1.ReplayService.Sample:output_type -> replay.v1.SampleResponse
	11, // 16: replay.v1.ReplayService.MutatePriorities:output_type -> replay.v1.MutatePrioritiesResponse
	14, // 17: replay.v1.ReplayService.GetTableInfo:output_type -> replay.v1.GetTableInfoResponse
	14, // [14:18] is the sub-list for method output_type
	10, // [10:14] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_replay_v1_replay_proto_init() }
func file_replay_v1_replay_proto_init() {
	if File_replay_v1_replay_proto != nil {
		return
	}
	file_replay_v1_replay_proto_msgTypes[4].OneofWrappers = []any{
		(*InsertRequest_Start)(nil),
		(*InsertRequest_Append)(nil),
		(*InsertRequest_CreateItem)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_replay_v1_replay_proto_rawDesc), len(file_replay_v1_replay_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_replay_v1_replay_proto_goTypes,
		DependencyIndexes: file_replay_v1_replay_proto_depIdxs,
		EnumInfos:         file_replay_v1_replay_proto_enumTypes,
		MessageInfos:      file_replay_v1_replay_proto_msgTypes,
	}.Build()
	File_replay_v1_replay_proto = out.File
	file_replay_v1_replay_proto_goTypes = nil
	file_replay_v1_replay_proto_depIdxs = nil
}
