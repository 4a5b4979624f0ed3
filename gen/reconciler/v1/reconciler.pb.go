// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: reconciler/v1/reconciler.proto

package reconcilerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type MatchOptions struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TopK          int32                  `protobuf:"varint,1,opt,name=top_k,json=topK,proto3" json:"top_k,omitempty"`                       // 0 -> server default
	ScoreCutoff   float64                `protobuf:"fixed64,2,opt,name=score_cutoff,json=scoreCutoff,proto3" json:"score_cutoff,omitempty"` // 0 -> server default
	Scorer        string                 `protobuf:"bytes,3,opt,name=scorer,proto3" json:"scorer,omitempty"`                                // token_set_ratio | token_sort_ratio | wratio | ratio | partial_ratio
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MatchOptions) Reset() {
	*x = MatchOptions{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchOptions) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchOptions) ProtoMessage() {}

func (x *MatchOptions) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchOptions.ProtoReflect.Descriptor instead.
func (*MatchOptions) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{0}
}

func (x *MatchOptions) GetTopK() int32 {
	if x != nil {
		return x.TopK
	}
	return 0
}

func (x *MatchOptions) GetScoreCutoff() float64 {
	if x != nil {
		return x.ScoreCutoff
	}
	return 0
}

func (x *MatchOptions) GetScorer() string {
	if x != nil {
		return x.Scorer
	}
	return ""
}

type MatchCandidate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	SecondaryCode string                 `protobuf:"bytes,3,opt,name=secondary_code,json=secondaryCode,proto3" json:"secondary_code,omitempty"`
	Score         float64                `protobuf:"fixed64,4,opt,name=score,proto3" json:"score,omitempty"`
	Rank          int32                  `protobuf:"varint,5,opt,name=rank,proto3" json:"rank,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MatchCandidate) Reset() {
	*x = MatchCandidate{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchCandidate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchCandidate) ProtoMessage() {}

func (x *MatchCandidate) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchCandidate.ProtoReflect.Descriptor instead.
func (*MatchCandidate) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{1}
}

func (x *MatchCandidate) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *MatchCandidate) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *MatchCandidate) GetSecondaryCode() string {
	if x != nil {
		return x.SecondaryCode
	}
	return ""
}

func (x *MatchCandidate) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *MatchCandidate) GetRank() int32 {
	if x != nil {
		return x.Rank
	}
	return 0
}

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	SkuCode       string                 `protobuf:"bytes,2,opt,name=sku_code,json=skuCode,proto3" json:"sku_code,omitempty"`
	Quantity      int32                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Shortage      int32                  `protobuf:"varint,4,opt,name=shortage,proto3" json:"shortage,omitempty"`
	Breakage      int32                  `protobuf:"varint,5,opt,name=breakage,proto3" json:"breakage,omitempty"`
	Leakage       int32                  `protobuf:"varint,6,opt,name=leakage,proto3" json:"leakage,omitempty"`
	Batch         string                 `protobuf:"bytes,7,opt,name=batch,proto3" json:"batch,omitempty"`
	Sno           string                 `protobuf:"bytes,8,opt,name=sno,proto3" json:"sno,omitempty"`
	Rate          float64                `protobuf:"fixed64,9,opt,name=rate,proto3" json:"rate,omitempty"`
	Discount      float64                `protobuf:"fixed64,10,opt,name=discount,proto3" json:"discount,omitempty"`
	Mrp           float64                `protobuf:"fixed64,11,opt,name=mrp,proto3" json:"mrp,omitempty"`
	Vat           float64                `protobuf:"fixed64,12,opt,name=vat,proto3" json:"vat,omitempty"`
	Hscode        string                 `protobuf:"bytes,13,opt,name=hscode,proto3" json:"hscode,omitempty"`
	AltQty        int32                  `protobuf:"varint,14,opt,name=alt_qty,json=altQty,proto3" json:"alt_qty,omitempty"`
	Unit          string                 `protobuf:"bytes,15,opt,name=unit,proto3" json:"unit,omitempty"`
	Candidates    []*MatchCandidate      `protobuf:"bytes,16,rep,name=candidates,proto3" json:"candidates,omitempty"`
	BestMatch     *MatchCandidate        `protobuf:"bytes,17,opt,name=best_match,json=bestMatch,proto3" json:"best_match,omitempty"`
	Confidence    string                 `protobuf:"bytes,18,opt,name=confidence,proto3" json:"confidence,omitempty"` // high | medium | low | none
	Resolution    string                 `protobuf:"bytes,19,opt,name=resolution,proto3" json:"resolution,omitempty"` // Existing | NewlyMatched | Unmatched
	TaxApplicable bool                   `protobuf:"varint,20,opt,name=tax_applicable,json=taxApplicable,proto3" json:"tax_applicable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{2}
}

func (x *LineItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *LineItem) GetSkuCode() string {
	if x != nil {
		return x.SkuCode
	}
	return ""
}

func (x *LineItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *LineItem) GetShortage() int32 {
	if x != nil {
		return x.Shortage
	}
	return 0
}

func (x *LineItem) GetBreakage() int32 {
	if x != nil {
		return x.Breakage
	}
	return 0
}

func (x *LineItem) GetLeakage() int32 {
	if x != nil {
		return x.Leakage
	}
	return 0
}

func (x *LineItem) GetBatch() string {
	if x != nil {
		return x.Batch
	}
	return ""
}

func (x *LineItem) GetSno() string {
	if x != nil {
		return x.Sno
	}
	return ""
}

func (x *LineItem) GetRate() float64 {
	if x != nil {
		return x.Rate
	}
	return 0
}

func (x *LineItem) GetDiscount() float64 {
	if x != nil {
		return x.Discount
	}
	return 0
}

func (x *LineItem) GetMrp() float64 {
	if x != nil {
		return x.Mrp
	}
	return 0
}

func (x *LineItem) GetVat() float64 {
	if x != nil {
		return x.Vat
	}
	return 0
}

func (x *LineItem) GetHscode() string {
	if x != nil {
		return x.Hscode
	}
	return ""
}

func (x *LineItem) GetAltQty() int32 {
	if x != nil {
		return x.AltQty
	}
	return 0
}

func (x *LineItem) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *LineItem) GetCandidates() []*MatchCandidate {
	if x != nil {
		return x.Candidates
	}
	return nil
}

func (x *LineItem) GetBestMatch() *MatchCandidate {
	if x != nil {
		return x.BestMatch
	}
	return nil
}

func (x *LineItem) GetConfidence() string {
	if x != nil {
		return x.Confidence
	}
	return ""
}

func (x *LineItem) GetResolution() string {
	if x != nil {
		return x.Resolution
	}
	return ""
}

func (x *LineItem) GetTaxApplicable() bool {
	if x != nil {
		return x.TaxApplicable
	}
	return false
}

type InvoiceHeader struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	OrderNo         string                 `protobuf:"bytes,1,opt,name=order_no,json=orderNo,proto3" json:"order_no,omitempty"`
	InvoiceNo       string                 `protobuf:"bytes,2,opt,name=invoice_no,json=invoiceNo,proto3" json:"invoice_no,omitempty"`
	DeliveryNote    string                 `protobuf:"bytes,3,opt,name=delivery_note,json=deliveryNote,proto3" json:"delivery_note,omitempty"`
	VehicleNo       string                 `protobuf:"bytes,4,opt,name=vehicle_no,json=vehicleNo,proto3" json:"vehicle_no,omitempty"`
	Transporter     string                 `protobuf:"bytes,5,opt,name=transporter,proto3" json:"transporter,omitempty"`
	DealerName      string                 `protobuf:"bytes,6,opt,name=dealer_name,json=dealerName,proto3" json:"dealer_name,omitempty"`
	CompanyName     string                 `protobuf:"bytes,7,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	TransactionType string                 `protobuf:"bytes,8,opt,name=transaction_type,json=transactionType,proto3" json:"transaction_type,omitempty"`
	TransactionDate string                 `protobuf:"bytes,9,opt,name=transaction_date,json=transactionDate,proto3" json:"transaction_date,omitempty"` // YYYY-MM-DD
	DueDate         string                 `protobuf:"bytes,10,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`                        // YYYY-MM-DD
	InvoiceDate     string                 `protobuf:"bytes,11,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"`            // YYYY-MM-DD
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *InvoiceHeader) Reset() {
	*x = InvoiceHeader{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvoiceHeader) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvoiceHeader) ProtoMessage() {}

func (x *InvoiceHeader) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvoiceHeader.ProtoReflect.Descriptor instead.
func (*InvoiceHeader) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{3}
}

func (x *InvoiceHeader) GetOrderNo() string {
	if x != nil {
		return x.OrderNo
	}
	return ""
}

func (x *InvoiceHeader) GetInvoiceNo() string {
	if x != nil {
		return x.InvoiceNo
	}
	return ""
}

func (x *InvoiceHeader) GetDeliveryNote() string {
	if x != nil {
		return x.DeliveryNote
	}
	return ""
}

func (x *InvoiceHeader) GetVehicleNo() string {
	if x != nil {
		return x.VehicleNo
	}
	return ""
}

func (x *InvoiceHeader) GetTransporter() string {
	if x != nil {
		return x.Transporter
	}
	return ""
}

func (x *InvoiceHeader) GetDealerName() string {
	if x != nil {
		return x.DealerName
	}
	return ""
}

func (x *InvoiceHeader) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *InvoiceHeader) GetTransactionType() string {
	if x != nil {
		return x.TransactionType
	}
	return ""
}

func (x *InvoiceHeader) GetTransactionDate() string {
	if x != nil {
		return x.TransactionDate
	}
	return ""
}

func (x *InvoiceHeader) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *InvoiceHeader) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

type TokenUsage struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Requests       int32                  `protobuf:"varint,1,opt,name=requests,proto3" json:"requests,omitempty"`
	RequestTokens  int32                  `protobuf:"varint,2,opt,name=request_tokens,json=requestTokens,proto3" json:"request_tokens,omitempty"`
	ResponseTokens int32                  `protobuf:"varint,3,opt,name=response_tokens,json=responseTokens,proto3" json:"response_tokens,omitempty"`
	TotalTokens    int32                  `protobuf:"varint,4,opt,name=total_tokens,json=totalTokens,proto3" json:"total_tokens,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *TokenUsage) Reset() {
	*x = TokenUsage{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TokenUsage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TokenUsage) ProtoMessage() {}

func (x *TokenUsage) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TokenUsage.ProtoReflect.Descriptor instead.
func (*TokenUsage) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{4}
}

func (x *TokenUsage) GetRequests() int32 {
	if x != nil {
		return x.Requests
	}
	return 0
}

func (x *TokenUsage) GetRequestTokens() int32 {
	if x != nil {
		return x.RequestTokens
	}
	return 0
}

func (x *TokenUsage) GetResponseTokens() int32 {
	if x != nil {
		return x.ResponseTokens
	}
	return 0
}

func (x *TokenUsage) GetTotalTokens() int32 {
	if x != nil {
		return x.TotalTokens
	}
	return 0
}

type ProcessInvoiceRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Image     []byte                 `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	MediaType string                 `protobuf:"bytes,2,opt,name=media_type,json=mediaType,proto3" json:"media_type,omitempty"` // image/png, image/jpeg
	Supplier  string                 `protobuf:"bytes,3,opt,name=supplier,proto3" json:"supplier,omitempty"`                    // enables the confirmed-mapping overlay
	Options   *MatchOptions          `protobuf:"bytes,4,opt,name=options,proto3" json:"options,omitempty"`
	// audit trail attribution
	CompanyId     string `protobuf:"bytes,5,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Username      string `protobuf:"bytes,6,opt,name=username,proto3" json:"username,omitempty"`
	LicenceId     string `protobuf:"bytes,7,opt,name=licence_id,json=licenceId,proto3" json:"licence_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessInvoiceRequest) Reset() {
	*x = ProcessInvoiceRequest{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessInvoiceRequest) ProtoMessage() {}

func (x *ProcessInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessInvoiceRequest.ProtoReflect.Descriptor instead.
func (*ProcessInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{5}
}

func (x *ProcessInvoiceRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *ProcessInvoiceRequest) GetMediaType() string {
	if x != nil {
		return x.MediaType
	}
	return ""
}

func (x *ProcessInvoiceRequest) GetSupplier() string {
	if x != nil {
		return x.Supplier
	}
	return ""
}

func (x *ProcessInvoiceRequest) GetOptions() *MatchOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *ProcessInvoiceRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *ProcessInvoiceRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *ProcessInvoiceRequest) GetLicenceId() string {
	if x != nil {
		return x.LicenceId
	}
	return ""
}

type ProcessInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Header        *InvoiceHeader         `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	Usage         *TokenUsage            `protobuf:"bytes,3,opt,name=usage,proto3" json:"usage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessInvoiceResponse) Reset() {
	*x = ProcessInvoiceResponse{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessInvoiceResponse) ProtoMessage() {}

func (x *ProcessInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessInvoiceResponse.ProtoReflect.Descriptor instead.
func (*ProcessInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{6}
}

func (x *ProcessInvoiceResponse) GetHeader() *InvoiceHeader {
	if x != nil {
		return x.Header
	}
	return nil
}

func (x *ProcessInvoiceResponse) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *ProcessInvoiceResponse) GetUsage() *TokenUsage {
	if x != nil {
		return x.Usage
	}
	return nil
}

type ReconcileItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*LineItem            `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	Supplier      string                 `protobuf:"bytes,2,opt,name=supplier,proto3" json:"supplier,omitempty"`
	Options       *MatchOptions          `protobuf:"bytes,3,opt,name=options,proto3" json:"options,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReconcileItemsRequest) Reset() {
	*x = ReconcileItemsRequest{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReconcileItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReconcileItemsRequest) ProtoMessage() {}

func (x *ReconcileItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReconcileItemsRequest.ProtoReflect.Descriptor instead.
func (*ReconcileItemsRequest) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{7}
}

func (x *ReconcileItemsRequest) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *ReconcileItemsRequest) GetSupplier() string {
	if x != nil {
		return x.Supplier
	}
	return ""
}

func (x *ReconcileItemsRequest) GetOptions() *MatchOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

type ReconcileItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*LineItem            `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReconcileItemsResponse) Reset() {
	*x = ReconcileItemsResponse{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReconcileItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReconcileItemsResponse) ProtoMessage() {}

func (x *ReconcileItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReconcileItemsResponse.ProtoReflect.Descriptor instead.
func (*ReconcileItemsResponse) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{8}
}

func (x *ReconcileItemsResponse) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type GetCacheStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCacheStatsRequest) Reset() {
	*x = GetCacheStatsRequest{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCacheStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCacheStatsRequest) ProtoMessage() {}

func (x *GetCacheStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCacheStatsRequest.ProtoReflect.Descriptor instead.
func (*GetCacheStatsRequest) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{9}
}

type GetCacheStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"` // empty | valid | expired
	EntryCount    int32                  `protobuf:"varint,2,opt,name=entry_count,json=entryCount,proto3" json:"entry_count,omitempty"`
	AgeSeconds    float64                `protobuf:"fixed64,3,opt,name=age_seconds,json=ageSeconds,proto3" json:"age_seconds,omitempty"`
	LoadCount     int64                  `protobuf:"varint,4,opt,name=load_count,json=loadCount,proto3" json:"load_count,omitempty"`
	TtlSeconds    float64                `protobuf:"fixed64,5,opt,name=ttl_seconds,json=ttlSeconds,proto3" json:"ttl_seconds,omitempty"`
	ExpiresIn     float64                `protobuf:"fixed64,6,opt,name=expires_in,json=expiresIn,proto3" json:"expires_in,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCacheStatsResponse) Reset() {
	*x = GetCacheStatsResponse{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCacheStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCacheStatsResponse) ProtoMessage() {}

func (x *GetCacheStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCacheStatsResponse.ProtoReflect.Descriptor instead.
func (*GetCacheStatsResponse) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{10}
}

func (x *GetCacheStatsResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetCacheStatsResponse) GetEntryCount() int32 {
	if x != nil {
		return x.EntryCount
	}
	return 0
}

func (x *GetCacheStatsResponse) GetAgeSeconds() float64 {
	if x != nil {
		return x.AgeSeconds
	}
	return 0
}

func (x *GetCacheStatsResponse) GetLoadCount() int64 {
	if x != nil {
		return x.LoadCount
	}
	return 0
}

func (x *GetCacheStatsResponse) GetTtlSeconds() float64 {
	if x != nil {
		return x.TtlSeconds
	}
	return 0
}

func (x *GetCacheStatsResponse) GetExpiresIn() float64 {
	if x != nil {
		return x.ExpiresIn
	}
	return 0
}

type InvalidateCacheRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvalidateCacheRequest) Reset() {
	*x = InvalidateCacheRequest{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvalidateCacheRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvalidateCacheRequest) ProtoMessage() {}

func (x *InvalidateCacheRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvalidateCacheRequest.ProtoReflect.Descriptor instead.
func (*InvalidateCacheRequest) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{11}
}

type InvalidateCacheResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvalidateCacheResponse) Reset() {
	*x = InvalidateCacheResponse{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvalidateCacheResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvalidateCacheResponse) ProtoMessage() {}

func (x *InvalidateCacheResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvalidateCacheResponse.ProtoReflect.Descriptor instead.
func (*InvalidateCacheResponse) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{12}
}

func (x *InvalidateCacheResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type RefreshCatalogRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshCatalogRequest) Reset() {
	*x = RefreshCatalogRequest{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshCatalogRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshCatalogRequest) ProtoMessage() {}

func (x *RefreshCatalogRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshCatalogRequest.ProtoReflect.Descriptor instead.
func (*RefreshCatalogRequest) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{13}
}

type ExportReconciliationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceNo     string                 `protobuf:"bytes,1,opt,name=invoice_no,json=invoiceNo,proto3" json:"invoice_no,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	Supplier      string                 `protobuf:"bytes,3,opt,name=supplier,proto3" json:"supplier,omitempty"`
	Options       *MatchOptions          `protobuf:"bytes,4,opt,name=options,proto3" json:"options,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReconciliationRequest) Reset() {
	*x = ExportReconciliationRequest{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReconciliationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReconciliationRequest) ProtoMessage() {}

func (x *ExportReconciliationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReconciliationRequest.ProtoReflect.Descriptor instead.
func (*ExportReconciliationRequest) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{14}
}

func (x *ExportReconciliationRequest) GetInvoiceNo() string {
	if x != nil {
		return x.InvoiceNo
	}
	return ""
}

func (x *ExportReconciliationRequest) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *ExportReconciliationRequest) GetSupplier() string {
	if x != nil {
		return x.Supplier
	}
	return ""
}

func (x *ExportReconciliationRequest) GetOptions() *MatchOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

type ExportReconciliationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReconciliationResponse) Reset() {
	*x = ExportReconciliationResponse{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReconciliationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReconciliationResponse) ProtoMessage() {}

func (x *ExportReconciliationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReconciliationResponse.ProtoReflect.Descriptor instead.
func (*ExportReconciliationResponse) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{15}
}

func (x *ExportReconciliationResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportReconciliationResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_reconciler_v1_reconciler_proto protoreflect.FileDescriptor

const file_reconciler_v1_reconciler_proto_rawDesc = "" +
	"\n" +
	"\x1ereconciler/v1/reconciler.proto\x12\rreconciler.v1\"^\n" +
	"\fMatchOptions\x12\x13\n" +
	"\x05top_k\x18\x01 \x01(\x05R\x04topK\x12!\n" +
	"\fscore_cutoff\x18\x02 \x01(\x01R\vscoreCutoff\x12\x16\n" +
	"\x06scorer\x18\x03 \x01(\tR\x06scorer\"\x97\x01\n" +
	"\x0eMatchCandidate\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12%\n" +
	"\x0esecondary_code\x18\x03 \x01(\tR\rsecondaryCode\x12\x14\n" +
	"\x05score\x18\x04 \x01(\x01R\x05score\x12\x12\n" +
	"\x04rank\x18\x05 \x01(\x05R\x04rank\"\xda\x04\n" +
	"\bLineItem\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x19\n" +
	"\bsku_code\x18\x02 \x01(\tR\askuCode\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x05R\bquantity\x12\x1a\n" +
	"\bshortage\x18\x04 \x01(\x05R\bshortage\x12\x1a\n" +
	"\bbreakage\x18\x05 \x01(\x05R\bbreakage\x12\x18\n" +
	"\aleakage\x18\x06 \x01(\x05R\aleakage\x12\x14\n" +
	"\x05batch\x18\a \x01(\tR\x05batch\x12\x10\n" +
	"\x03sno\x18\b \x01(\tR\x03sno\x12\x12\n" +
	"\x04rate\x18\t \x01(\x01R\x04rate\x12\x1a\n" +
	"\bdiscount\x18\n" +
	" \x01(\x01R\bdiscount\x12\x10\n" +
	"\x03mrp\x18\v \x01(\x01R\x03mrp\x12\x10\n" +
	"\x03vat\x18\f \x01(\x01R\x03vat\x12\x16\n" +
	"\x06hscode\x18\r \x01(\tR\x06hscode\x12\x17\n" +
	"\aalt_qty\x18\x0e \x01(\x05R\x06altQty\x12\x12\n" +
	"\x04unit\x18\x0f \x01(\tR\x04unit\x12=\n" +
	"\n" +
	"candidates\x18\x10 \x03(\v2\x1d.reconciler.v1.MatchCandidateR\n" +
	"candidates\x12<\n" +
	"\n" +
	"best_match\x18\x11 \x01(\v2\x1d.reconciler.v1.MatchCandidateR\tbestMatch\x12\x1e\n" +
	"\n" +
	"confidence\x18\x12 \x01(\tR\n" +
	"confidence\x12\x1e\n" +
	"\n" +
	"resolution\x18\x13 \x01(\tR\n" +
	"resolution\x12%\n" +
	"\x0etax_applicable\x18\x14 \x01(\bR\rtaxApplicable\"\x87\x03\n" +
	"\rInvoiceHeader\x12\x19\n" +
	"\border_no\x18\x01 \x01(\tR\aorderNo\x12\x1d\n" +
	"\n" +
	"invoice_no\x18\x02 \x01(\tR\tinvoiceNo\x12#\n" +
	"\rdelivery_note\x18\x03 \x01(\tR\fdeliveryNote\x12\x1d\n" +
	"\n" +
	"vehicle_no\x18\x04 \x01(\tR\tvehicleNo\x12 \n" +
	"\vtransporter\x18\x05 \x01(\tR\vtransporter\x12\x1f\n" +
	"\vdealer_name\x18\x06 \x01(\tR\n" +
	"dealerName\x12!\n" +
	"\fcompany_name\x18\a \x01(\tR\vcompanyName\x12)\n" +
	"\x10transaction_type\x18\b \x01(\tR\x0ftransactionType\x12)\n" +
	"\x10transaction_date\x18\t \x01(\tR\x0ftransactionDate\x12\x19\n" +
	"\bdue_date\x18\n" +
	" \x01(\tR\adueDate\x12!\n" +
	"\finvoice_date\x18\v \x01(\tR\vinvoiceDate\"\x9b\x01\n" +
	"\n" +
	"TokenUsage\x12\x1a\n" +
	"\brequests\x18\x01 \x01(\x05R\brequests\x12%\n" +
	"\x0erequest_tokens\x18\x02 \x01(\x05R\rrequestTokens\x12'\n" +
	"\x0fresponse_tokens\x18\x03 \x01(\x05R\x0eresponseTokens\x12!\n" +
	"\ftotal_tokens\x18\x04 \x01(\x05R\vtotalTokens\"\xf9\x01\n" +
	"\x15ProcessInvoiceRequest\x12\x14\n" +
	"\x05image\x18\x01 \x01(\fR\x05image\x12\x1d\n" +
	"\n" +
	"media_type\x18\x02 \x01(\tR\tmediaType\x12\x1a\n" +
	"\bsupplier\x18\x03 \x01(\tR\bsupplier\x125\n" +
	"\aoptions\x18\x04 \x01(\v2\x1b.reconciler.v1.MatchOptionsR\aoptions\x12\x1d\n" +
	"\n" +
	"company_id\x18\x05 \x01(\tR\tcompanyId\x12\x1a\n" +
	"\busername\x18\x06 \x01(\tR\busername\x12\x1d\n" +
	"\n" +
	"licence_id\x18\a \x01(\tR\tlicenceId\"\xae\x01\n" +
	"\x16ProcessInvoiceResponse\x124\n" +
	"\x06header\x18\x01 \x01(\v2\x1c.reconciler.v1.InvoiceHeaderR\x06header\x12-\n" +
	"\x05items\x18\x02 \x03(\v2\x17.reconciler.v1.LineItemR\x05items\x12/\n" +
	"\x05usage\x18\x03 \x01(\v2\x19.reconciler.v1.TokenUsageR\x05usage\"\x99\x01\n" +
	"\x15ReconcileItemsRequest\x12-\n" +
	"\x05items\x18\x01 \x03(\v2\x17.reconciler.v1.LineItemR\x05items\x12\x1a\n" +
	"\bsupplier\x18\x02 \x01(\tR\bsupplier\x125\n" +
	"\aoptions\x18\x03 \x01(\v2\x1b.reconciler.v1.MatchOptionsR\aoptions\"G\n" +
	"\x16ReconcileItemsResponse\x12-\n" +
	"\x05items\x18\x01 \x03(\v2\x17.reconciler.v1.LineItemR\x05items\"\x16\n" +
	"\x14GetCacheStatsRequest\"\xd0\x01\n" +
	"\x15GetCacheStatsResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1f\n" +
	"\ventry_count\x18\x02 \x01(\x05R\n" +
	"entryCount\x12\x1f\n" +
	"\vage_seconds\x18\x03 \x01(\x01R\n" +
	"ageSeconds\x12\x1d\n" +
	"\n" +
	"load_count\x18\x04 \x01(\x03R\tloadCount\x12\x1f\n" +
	"\vttl_seconds\x18\x05 \x01(\x01R\n" +
	"ttlSeconds\x12\x1d\n" +
	"\n" +
	"expires_in\x18\x06 \x01(\x01R\texpiresIn\"\x18\n" +
	"\x16InvalidateCacheRequest\"1\n" +
	"\x17InvalidateCacheResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"\x17\n" +
	"\x15RefreshCatalogRequest\"\xbe\x01\n" +
	"\x1bExportReconciliationRequest\x12\x1d\n" +
	"\n" +
	"invoice_no\x18\x01 \x01(\tR\tinvoiceNo\x12-\n" +
	"\x05items\x18\x02 \x03(\v2\x17.reconciler.v1.LineItemR\x05items\x12\x1a\n" +
	"\bsupplier\x18\x03 \x01(\tR\bsupplier\x125\n" +
	"\aoptions\x18\x04 \x01(\v2\x1b.reconciler.v1.MatchOptionsR\aoptions\"N\n" +
	"\x1cExportReconciliationResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xde\x04\n" +
	"\x11ReconcilerService\x12]\n" +
	"\x0eProcessInvoice\x12$.reconciler.v1.ProcessInvoiceRequest\x1a%.reconciler.v1.ProcessInvoiceResponse\x12]\n" +
	"\x0eReconcileItems\x12$.reconciler.v1.ReconcileItemsRequest\x1a%.reconciler.v1.ReconcileItemsResponse\x12Z\n" +
	"\rGetCacheStats\x12#.reconciler.v1.GetCacheStatsRequest\x1a$.reconciler.v1.GetCacheStatsResponse\x12`\n" +
	"\x0fInvalidateCache\x12%.reconciler.v1.InvalidateCacheRequest\x1a&.reconciler.v1.InvalidateCacheResponse\x12\\\n" +
	"\x0eRefreshCatalog\x12$.reconciler.v1.RefreshCatalogRequest\x1a$.reconciler.v1.GetCacheStatsResponse\x12o\n" +
	"\x14ExportReconciliation\x12*.reconciler.v1.ExportReconciliationRequest\x1a+.reconciler.v1.ExportReconciliationResponseBMZKgithub.com/joseph-ayodele/invoice-reconciler/gen/reconciler/v1;reconcilerv1b\x06proto3"

var (
	file_reconciler_v1_reconciler_proto_rawDescOnce sync.Once
	file_reconciler_v1_reconciler_proto_rawDescData []byte
)

func file_reconciler_v1_reconciler_proto_rawDescGZIP() []byte {
	file_reconciler_v1_reconciler_proto_rawDescOnce.Do(func() {
		file_reconciler_v1_reconciler_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_reconciler_v1_reconciler_proto_rawDesc), len(file_reconciler_v1_reconciler_proto_rawDesc)))
	})
	return file_reconciler_v1_reconciler_proto_rawDescData
}

var file_reconciler_v1_reconciler_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_reconciler_v1_reconciler_proto_goTypes = []any{
	(*MatchOptions)(nil),                 // 0: reconciler.v1.MatchOptions
	(*MatchCandidate)(nil),               // 1: reconciler.v1.MatchCandidate
	(*LineItem)(nil),                     // 2: reconciler.v1.LineItem
	(*InvoiceHeader)(nil),                // 3: reconciler.v1.InvoiceHeader
	(*TokenUsage)(nil),                   // 4: reconciler.v1.TokenUsage
	(*ProcessInvoiceRequest)(nil),        // 5: reconciler.v1.ProcessInvoiceRequest
	(*ProcessInvoiceResponse)(nil),       // 6: reconciler.v1.ProcessInvoiceResponse
	(*ReconcileItemsRequest)(nil),        // 7: reconciler.v1.ReconcileItemsRequest
	(*ReconcileItemsResponse)(nil),       // 8: reconciler.v1.ReconcileItemsResponse
	(*GetCacheStatsRequest)(nil),         // 9: reconciler.v1.GetCacheStatsRequest
	(*GetCacheStatsResponse)(nil),        // 10: reconciler.v1.GetCacheStatsResponse
	(*InvalidateCacheRequest)(nil),       // 11: reconciler.v1.InvalidateCacheRequest
	(*InvalidateCacheResponse)(nil),      // 12: reconciler.v1.InvalidateCacheResponse
	(*RefreshCatalogRequest)(nil),        // 13: reconciler.v1.RefreshCatalogRequest
	(*ExportReconciliationRequest)(nil),  // 14: reconciler.v1.ExportReconciliationRequest
	(*ExportReconciliationResponse)(nil), // 15: reconciler.v1.ExportReconciliationResponse
}
var file_reconciler_v1_reconciler_proto_depIdxs = []int32{
	1,  // 0: reconciler.v1.LineItem.candidates:type_name -> reconciler.v1.MatchCandidate
	1,  // 1: reconciler.v1.LineItem.best_match:type_name -> reconciler.v1.MatchCandidate
	0,  // 2: reconciler.v1.ProcessInvoiceRequest.options:type_name -> reconciler.v1.MatchOptions
	3,  // 3: reconciler.v1.ProcessInvoiceResponse.header:type_name -> reconciler.v1.InvoiceHeader
	2,  // 4: reconciler.v1.ProcessInvoiceResponse.items:type_name -> reconciler.v1.LineItem
	4,  // 5: reconciler.v1.ProcessInvoiceResponse.usage:type_name -> reconciler.v1.TokenUsage
	2,  // 6: reconciler.v1.ReconcileItemsRequest.items:type_name -> reconciler.v1.LineItem
	0,  // 7: reconciler.v1.ReconcileItemsRequest.options:type_name -> reconciler.v1.MatchOptions
	2,  // 8: reconciler.v1.ReconcileItemsResponse.items:type_name -> reconciler.v1.LineItem
	2,  // 9: reconciler.v1.ExportReconciliationRequest.items:type_name -> reconciler.v1.LineItem
	0,  // 10: reconciler.v1.ExportReconciliationRequest.options:type_name -> reconciler.v1.MatchOptions
	5,  // 11: reconciler.v1.ReconcilerService.ProcessInvoice:input_type -> reconciler.v1.ProcessInvoiceRequest
	7,  // 12: reconciler.v1.ReconcilerService.ReconcileItems:input_type -> reconciler.v1.ReconcileItemsRequest
	9,  // 13: reconciler.v1.ReconcilerService.GetCacheStats:input_type -> reconciler.v1.GetCacheStatsRequest
	11, // 14: reconciler.v1.ReconcilerService.InvalidateCache:input_type -> reconciler.v1.InvalidateCacheRequest
	13, // 15: reconciler.v1.ReconcilerService.RefreshCatalog:input_type -> reconciler.v1.RefreshCatalogRequest
	14, // 16: reconciler.v1.ReconcilerService.ExportReconciliation:input_type -> reconciler.v1.ExportReconciliationRequest
	6,  // 17: reconciler.v1.ReconcilerService.ProcessInvoice:output_type -> reconciler.v1.ProcessInvoiceResponse
	8,  // 18: reconciler.v1.ReconcilerService.ReconcileItems:output_type -> reconciler.v1.ReconcileItemsResponse
	10, // 19: reconciler.v1.ReconcilerService.GetCacheStats:output_type -> reconciler.v1.GetCacheStatsResponse
	12, // 20: reconciler.v1.ReconcilerService.InvalidateCache:output_type -> reconciler.v1.InvalidateCacheResponse
	10, // 21: reconciler.v1.ReconcilerService.RefreshCatalog:output_type -> reconciler.v1.GetCacheStatsResponse
	15, // 22: reconciler.v1.ReconcilerService.ExportReconciliation:output_type -> reconciler.v1.ExportReconciliationResponse
	17, // [17:23] is the sub-list for method output_type
	11, // [11:17] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_reconciler_v1_reconciler_proto_init() }
func file_reconciler_v1_reconciler_proto_init() {
	if File_reconciler_v1_reconciler_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_reconciler_v1_reconciler_proto_rawDesc), len(file_reconciler_v1_reconciler_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_reconciler_v1_reconciler_proto_goTypes,
		DependencyIndexes: file_reconciler_v1_reconciler_proto_depIdxs,
		MessageInfos:      file_reconciler_v1_reconciler_proto_msgTypes,
	}.Build()
	File_reconciler_v1_reconciler_proto = out.File
	file_reconciler_v1_reconciler_proto_goTypes = nil
	file_reconciler_v1_reconciler_proto_depIdxs = nil
}
