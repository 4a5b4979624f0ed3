package server

import (
	reconcilerv1 "github.com/joseph-ayodele/invoice-reconciler/gen/reconciler/v1"
	"github.com/joseph-ayodele/invoice-reconciler/internal/catalog"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
	"github.com/joseph-ayodele/invoice-reconciler/internal/llm"
)

func headerToProto(f llm.InvoiceFields) *reconcilerv1.InvoiceHeader {
	return &reconcilerv1.InvoiceHeader{
		OrderNo:         f.OrderNo,
		InvoiceNo:       f.InvoiceNo,
		DeliveryNote:    f.DeliveryNote,
		VehicleNo:       f.VehicleNo,
		Transporter:     f.Transporter,
		DealerName:      f.DealerName,
		CompanyName:     f.CompanyName,
		TransactionType: f.TransactionType,
		TransactionDate: f.TransactionDate,
		DueDate:         f.DueDate,
		InvoiceDate:     f.InvoiceDate,
	}
}

func candidateToProto(c entity.MatchCandidate) *reconcilerv1.MatchCandidate {
	return &reconcilerv1.MatchCandidate{
		Description:   c.Description,
		Code:          c.Code,
		SecondaryCode: c.SecondaryCode,
		Score:         c.Score,
		Rank:          int32(c.Rank),
	}
}

func itemsToProto(items []*entity.LineItem) []*reconcilerv1.LineItem {
	out := make([]*reconcilerv1.LineItem, 0, len(items))
	for _, it := range items {
		pb := &reconcilerv1.LineItem{
			Description:   it.Description,
			SkuCode:       it.SKUCode,
			Quantity:      int32(it.Quantity),
			Shortage:      int32(it.Shortage),
			Breakage:      int32(it.Breakage),
			Leakage:       int32(it.Leakage),
			Batch:         it.Batch,
			Sno:           it.SerialNo,
			Rate:          it.Rate,
			Discount:      it.Discount,
			Mrp:           it.MRP,
			Vat:           it.VAT,
			Hscode:        it.HSCode,
			AltQty:        int32(it.AltQty),
			Unit:          it.Unit,
			Confidence:    string(it.Confidence),
			Resolution:    string(it.Resolution),
			TaxApplicable: it.TaxApplicable,
		}
		for _, c := range it.Candidates {
			pb.Candidates = append(pb.Candidates, candidateToProto(c))
		}
		if it.BestMatch != nil {
			pb.BestMatch = candidateToProto(*it.BestMatch)
		}
		out = append(out, pb)
	}
	return out
}

func itemsFromProto(items []*reconcilerv1.LineItem) []*entity.LineItem {
	out := make([]*entity.LineItem, 0, len(items))
	for _, pb := range items {
		out = append(out, &entity.LineItem{
			Description: pb.GetDescription(),
			SKUCode:     pb.GetSkuCode(),
			Quantity:    int(pb.GetQuantity()),
			Shortage:    int(pb.GetShortage()),
			Breakage:    int(pb.GetBreakage()),
			Leakage:     int(pb.GetLeakage()),
			Batch:       pb.GetBatch(),
			SerialNo:    pb.GetSno(),
			Rate:        pb.GetRate(),
			Discount:    pb.GetDiscount(),
			MRP:         pb.GetMrp(),
			VAT:         pb.GetVat(),
			HSCode:      pb.GetHscode(),
			AltQty:      int(pb.GetAltQty()),
			Unit:        pb.GetUnit(),
		})
	}
	return out
}

func statsToProto(st catalog.CacheStats) *reconcilerv1.GetCacheStatsResponse {
	return &reconcilerv1.GetCacheStatsResponse{
		Status:     st.Status,
		EntryCount: int32(st.EntryCount),
		AgeSeconds: st.AgeSeconds,
		LoadCount:  st.LoadCount,
		TtlSeconds: st.TTLSeconds,
		ExpiresIn:  st.ExpiresIn,
	}
}
