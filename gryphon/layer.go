package gryphon

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/moiji-mobile/sigdissect/tree"
)

// LayerTypeGryphon is the gopacket layer type of a Gryphon frame.
var LayerTypeGryphon = gopacket.RegisterLayerType(7000, gopacket.LayerTypeMetadata{
	Name:    "Gryphon",
	Decoder: gopacket.DecodeFunc(decodeGryphon),
})

func init() {
	layers.RegisterTCPPortLayerType(layers.TCPPort(Port), LayerTypeGryphon)
}

// Gryphon is one frame as a gopacket layer. Contents holds the header,
// Payload the body without padding.
type Gryphon struct {
	layers.BaseLayer
	Frame Frame
	Tree  *tree.Tree
}

func (g *Gryphon) LayerType() gopacket.LayerType { return LayerTypeGryphon }

// DecodeFromBytes decodes the first frame in data.
func (g *Gryphon) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	t, fr, err := Dissect(data)
	if err != nil {
		df.SetTruncated()
		return err
	}
	g.Tree, g.Frame = t, fr
	end := HeaderLength + int(fr.Header.Length)
	g.Contents = data[:HeaderLength]
	g.Payload = data[HeaderLength:end]
	return nil
}

func (g *Gryphon) CanDecode() gopacket.LayerClass { return LayerTypeGryphon }

func (g *Gryphon) NextLayerType() gopacket.LayerType { return gopacket.LayerTypePayload }

func decodeGryphon(data []byte, p gopacket.PacketBuilder) error {
	g := &Gryphon{}
	if err := g.DecodeFromBytes(data, p); err != nil {
		return err
	}
	p.AddLayer(g)
	return nil
}
