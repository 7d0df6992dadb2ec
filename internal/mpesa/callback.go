package mpesa

import "github.com/tidwall/gjson"

// CallbackSummary holds the fields of an STK callback worth logging. Absent
// fields stay empty; any payload shape is accepted.
type CallbackSummary struct {
	Valid             bool
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int64
	ResultDesc        string
	Amount            float64
	ReceiptNumber     string
}

func SummarizeCallback(body []byte) CallbackSummary {
	if !gjson.ValidBytes(body) {
		return CallbackSummary{}
	}

	cb := gjson.GetBytes(body, "Body.stkCallback")
	s := CallbackSummary{
		Valid:             true,
		MerchantRequestID: cb.Get("MerchantRequestID").String(),
		CheckoutRequestID: cb.Get("CheckoutRequestID").String(),
		ResultCode:        cb.Get("ResultCode").Int(),
		ResultDesc:        cb.Get("ResultDesc").String(),
	}

	cb.Get("CallbackMetadata.Item").ForEach(func(_, item gjson.Result) bool {
		switch item.Get("Name").String() {
		case "Amount":
			s.Amount = item.Get("Value").Float()
		case "MpesaReceiptNumber":
			s.ReceiptNumber = item.Get("Value").String()
		}
		return true
	})
	return s
}

// CheckoutRequestID extracts the id from an STK push acknowledgement.
func CheckoutRequestID(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	return gjson.GetBytes(body, "CheckoutRequestID").String()
}
