package types

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestCheckoutServiceDescriptorMatchesHandlers(t *testing.T) {
	svc := File_checkout_proto.Services().ByName("CheckoutService")
	if svc == nil {
		t.Fatal("expected CheckoutService in checkout.proto")
	}
	if string(svc.FullName()) != CheckoutService_ServiceDesc.ServiceName {
		t.Fatalf("service name mismatch: %s vs %s", svc.FullName(), CheckoutService_ServiceDesc.ServiceName)
	}
	if svc.Methods().Len() != len(CheckoutService_ServiceDesc.Methods) {
		t.Fatalf("expected %d methods, got %d", len(CheckoutService_ServiceDesc.Methods), svc.Methods().Len())
	}

	inputs := map[string]proto.Message{
		"Health":          &HealthRequest{},
		"ListProviders":   &ListProvidersRequest{},
		"CreateCheckout":  &CheckoutRequest{},
		"GetOrderPayment": &GetOrderPaymentRequest{},
		"RetryPayment":    &RetryPaymentRequest{},
		"GetOrderDetails": &GetOrderDetailsRequest{},
		"RefundOrder":     &RefundOrderRequest{},
	}
	for _, desc := range CheckoutService_ServiceDesc.Methods {
		method := svc.Methods().ByName(protoreflect.Name(desc.MethodName))
		if method == nil {
			t.Fatalf("method %s missing from descriptor", desc.MethodName)
		}
		want := inputs[desc.MethodName].ProtoReflect().Descriptor().FullName()
		if method.Input().FullName() != want {
			t.Fatalf("%s input: expected %s, got %s", desc.MethodName, want, method.Input().FullName())
		}
	}
}

func TestOrderDetailsResponseWireRoundTrip(t *testing.T) {
	in := &OrderDetailsResponse{
		Order: &OrderPayment{OrderNumber: "ORD-1", PaymentStatus: "paid", TotalMinor: 12500, Currency: "AMD"},
		Attempts: []*PaymentAttempt{
			{Reference: "ORD-1-1", Provider: "idram", Status: "superseded"},
			{Reference: "ORD-1-2", Provider: "stripe", ProviderPaymentId: "cs_test_1", Status: "completed"},
		},
		Events: []*OrderEvent{
			{EventType: "payment_confirmed", NewStatus: "paid", Payload: map[string]string{"provider": "stripe", "amount": "125.00"}},
		},
		Callbacks: []*WebhookCallback{{Provider: "stripe", Status: "processed"}},
	}

	raw, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	out := &OrderDetailsResponse{}
	if err := proto.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip changed message:\n in: %v\nout: %v", in, out)
	}
	if out.GetEvents()[0].GetPayload()["amount"] != "125.00" {
		t.Fatalf("expected payload entry to survive, got %v", out.GetEvents()[0].GetPayload())
	}
}
