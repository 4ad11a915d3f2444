package resourceclient

import (
	"github.com/nft-rainbow/rainbow-goutils/utils/enumutils"
)

// Kind 是 Result 的标签：调用方只需要按 Kind 分支，不需要关心传输细节。
type Kind int8

const (
	KindOk Kind = iota + 1
	KindError
)

// FailureKind 细分 KindError 的来源。
type FailureKind int8

const (
	FailureTransport FailureKind = iota + 1
	FailureHTTPStatus
	FailureDecode
)

var (
	KindEb        enumutils.EnumBase[Kind]
	FailureKindEb enumutils.EnumBase[FailureKind]
)

func init() {
	KindEb = enumutils.NewEnumBase("Kind", map[Kind]string{
		KindOk:    "ok",
		KindError: "error",
	})
	FailureKindEb = enumutils.NewEnumBase("FailureKind", map[FailureKind]string{
		FailureTransport:  "transport",
		FailureHTTPStatus: "http_status",
		FailureDecode:     "decode",
	})
}

func (k Kind) MarshalText() ([]byte, error) {
	return KindEb.MarshalText(k)
}

func (k *Kind) UnmarshalText(data []byte) error {
	val, err := KindEb.UnmarshalText(data)
	if err != nil {
		return err
	}
	*k = val
	return nil
}

func (k Kind) String() string {
	return KindEb.String(k)
}

func (f FailureKind) MarshalText() ([]byte, error) {
	return FailureKindEb.MarshalText(f)
}

func (f *FailureKind) UnmarshalText(data []byte) error {
	val, err := FailureKindEb.UnmarshalText(data)
	if err != nil {
		return err
	}
	*f = val
	return nil
}

func (f FailureKind) String() string {
	return FailureKindEb.String(f)
}

func ParseFailureKind(s string) (FailureKind, error) {
	return FailureKindEb.Parse(s)
}
