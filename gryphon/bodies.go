package gryphon

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/moiji-mobile/sigdissect/tree"
)

// ProtoBus is the handoff protocol of the header and data of a vehicle
// bus message. The selector is the channel the message belongs to.
const ProtoBus = "gryphon_bus"

func cmdInitBody(f *fields) {
	off := f.offset()
	v := f.uint(1)
	if f.ok() {
		mode := "Always initialize"
		if v != 0 {
			mode = "Initialize if not previously initialized"
		}
		f.n.AddValue(off, 1, "Mode: "+mode, v)
	}
	f.reserved(3)
}

func eventID(f *fields) {
	off := f.offset()
	v := f.uint(1)
	if f.ok() {
		if v == 0 {
			f.n.AddValue(off, 1, "Event: All Events.", v)
		} else {
			f.n.AddValue(off, 1, fmt.Sprintf("Event: %d", v), v)
		}
	}
	f.reserved(3)
}

// timeValue shows the gateway clock, microseconds since the epoch.
func timeValue(f *fields) {
	off := f.offset()
	b := f.octets(8)
	if !f.ok() {
		return
	}
	us := binary.BigEndian.Uint64(b)
	t := time.Unix(int64(us/1000000), int64(us%1000000)*1000).UTC()
	f.n.AddValue(off, 8, "Date/Time: "+t.Format("2006-01-02 15:04:05.000000 UTC"), us)
}

func rxDrop(f *fields) { f.num(4, "Number of dropped RX messages") }

func speed(f *fields) {
	f.num(1, "Speed index")
	f.reserved(3)
}

func speeds(f *fields) {
	size := int(f.num(1, "Size of a preset"))
	count := int(f.num(1, "Number of presets"))
	for i := 0; i < count && f.ok(); i++ {
		f.hex(size, fmt.Sprintf("Preset %d", i+1))
	}
}

// respConfig decodes the device description and one block per channel.
func respConfig(f *fields) {
	f.str(20, "Device name")
	f.str(8, "Device version")
	f.str(20, "Device serial number")
	count := int(f.num(1, "Number of channels"))
	f.reserved(15)
	for i := 0; i < count && f.ok(); i++ {
		if f.remaining() < 80 {
			f.octets(80)
			break
		}
		ch := f.n.Add(f.offset(), 80, fmt.Sprintf("Channel %d", i+1))
		g := f.under(ch)
		g.str(20, "Driver name")
		g.str(8, "Driver version")
		g.str(16, "Device security string")
		g.hex(4, "Valid Header lengths")
		g.num(2, "Maximum data length")
		g.num(2, "Minimum data length")
		g.str(20, "Hardware serial number")
		g.named(1, "Protocol type", protocolTypeNames)
		g.num(1, "Protocol subtype")
		g.num(1, "Channel ID")
		g.num(1, "Card slot number")
		g.num(2, "Maximum extra data length")
		g.num(2, "Minimum extra data length")
		f.join(g)
	}
}

var protocolTypeNames = map[uint64]string{
	0x00: "Unknown",
	0x01: "CAN",
	0x02: "SAE J1850",
	0x03: "Chrysler SCI",
	0x04: "Ford UBP",
	0x05: "Dialog",
	0x06: "ISO 9141/14230",
	0x07: "Echo",
	0x08: "Keyword 2000",
	0x09: "Digital I/O",
	0x0a: "J1939",
	0x0b: "LIN",
}

var filterOperatorNames = map[uint64]string{
	0:  "Bit-wise check",
	1:  "> (signed)",
	2:  ">= (signed)",
	3:  "< (signed)",
	4:  "<= (signed)",
	5:  "=",
	6:  "!=",
	7:  "> (unsigned)",
	8:  ">= (unsigned)",
	9:  "< (unsigned)",
	10: "<= (unsigned)",
	11: "Digital, low to high transition",
	12: "Digital, high to low transition",
	13: "Digital, change",
}

var filterDataTypeNames = map[uint64]string{
	0: "Frame header",
	1: "Header",
	2: "Data",
	3: "Extra data",
	4: "Event",
}

const opBitwise = 0

// addFilter decodes filter flags and the filter blocks that follow.
func addFilter(f *fields) {
	off := f.offset()
	flags := f.uint(1)
	if f.ok() {
		fl := f.n.AddValue(off, 1, fmt.Sprintf("Flags: %#02x", flags), flags)
		g := f.under(fl)
		g.flag(off, 1, flags, 0x01, "Pass", "Block")
		g.flag(off, 1, flags, 0x02, "Active", "Inactive")
	}
	count := int(f.num(1, "Number of filter blocks"))
	f.reserved(6)
	filterBlocks(f, count)
}

func filterBlocks(f *fields, count int) {
	for i := 0; i < count && f.ok() && f.remaining() > 0; i++ {
		start := f.offset()
		blk := f.n.Add(start, 0, fmt.Sprintf("Filter block %d", i+1))
		g := f.under(blk)
		g.num(2, "Byte offset")
		length := int(g.num(2, "Length of Pattern & Mask"))
		g.named(1, "Type of data", filterDataTypeNames)
		op := g.named(1, "Type of comparison", filterOperatorNames)
		g.reserved(2)
		used := length
		switch {
		case op == opBitwise:
			g.hex(length, "Pattern")
			g.hex(length, "Mask")
			used = 2 * length
		case op >= 11:
			used = 0
		default:
			g.hex(length, "Value")
		}
		g.pad(used)
		f.join(g)
		blk.Close(f.offset(), "")
	}
}

func filterHandle(f *fields) {
	f.num(1, "Filter handle")
	f.reserved(3)
}

var filterActionNames = map[uint64]string{
	0: "Activate",
	1: "Deactivate",
	2: "Delete",
}

func modifyFilter(f *fields) {
	off := f.offset()
	h := f.uint(1)
	if f.ok() {
		if h == 0 {
			f.n.AddValue(off, 1, "Filter handles: all", h)
		} else {
			f.n.AddValue(off, 1, fmt.Sprintf("Filter handle: %d", h), h)
		}
	}
	f.named(1, "Action", filterActionNames)
	f.reserved(2)
}

func handles(f *fields) {
	count := int(f.num(1, "Number of handles"))
	for i := 0; i < count && f.ok(); i++ {
		f.num(1, "Handle")
	}
}

var defaultFilterNames = map[uint64]string{
	0: "Block",
	1: "Pass",
}

func defaultFilter(f *fields) {
	f.named(1, "Default filter", defaultFilterNames)
	f.reserved(3)
}

var filterModeNames = map[uint64]string{
	3: "Filtering is off, pass all messages",
	4: "Filtering is off, block all messages",
	5: "Filtering is on",
}

func filterMode(f *fields) {
	f.named(1, "Filter mode", filterModeNames)
	f.reserved(3)
}

func eventNames(f *fields) {
	for f.ok() && f.remaining() >= 21 {
		off := f.offset()
		id := f.uint(1)
		name := cstring(f.octets(20))
		f.n.AddValue(off, 21, fmt.Sprintf("Event %d: %s", id, name), id)
	}
}

var ioctlNames = map[uint64]string{
	0x11100001: "GINIT",
	0x11100002: "GLOOPON",
	0x11100003: "GLOOPOFF",
	0x11100004: "GGETHWTYPE",
	0x11100005: "GGETREG",
	0x11100006: "GSETREG",
	0x11100007: "GGETRXCOUNT",
	0x11100008: "GSETRXCOUNT",
	0x11100009: "GGETTXCOUNT",
	0x1110000a: "GSETTXCOUNT",
}

func ioctl(f *fields) {
	f.named(4, "IOCTL", ioctlNames)
	f.rest("Data")
}

func register(f *fields) {
	f.str(16, "Username")
	f.str(32, "Password")
}

func registered(f *fields) {
	f.num(1, "Client ID")
	f.num(1, "Privileges")
	f.reserved(2)
}

var sortNames = map[uint64]string{
	0: "Do not sort messages",
	1: "Sort into blocks of up to 16 messages",
}

func sortMode(f *fields) {
	f.named(1, "Set sorting", sortNames)
	f.reserved(3)
}

var optimizationNames = map[uint64]string{
	0: "Optimize for throughput (Nagle algorithm enabled)",
	1: "Optimize for latency (Nagle algorithm disabled)",
}

func optimization(f *fields) {
	f.named(1, "Set optimization", optimizationNames)
	f.reserved(3)
}

func clientID(f *fields) {
	f.num(1, "Client ID")
	f.reserved(3)
}

func schedule(f *fields) {
	off := f.offset()
	it := f.uint(4)
	if f.ok() {
		if it == 0 {
			f.n.AddValue(off, 4, "Number of iterations: infinite", it)
		} else {
			f.n.AddValue(off, 4, fmt.Sprintf("Number of iterations: %d", it), it)
		}
	}
	off = f.offset()
	flags := f.uint(4)
	if f.ok() {
		f.flag(off, 4, flags, 0x01, "Critical scheduler", "Normal scheduler")
	}
	for i := 1; f.ok() && f.remaining() > 0; i++ {
		start := f.offset()
		msg := f.n.Add(start, 0, fmt.Sprintf("Message %d", i))
		g := f.under(msg)
		g.num(4, "Sleep (milliseconds)")
		g.num(4, "Transmit count")
		g.num(4, "Transmit period (milliseconds)")
		off := g.offset()
		mf := g.uint(2)
		if g.ok() {
			g.flag(off, 2, mf, 0x01, "Skip the last period", "Include the last period")
		}
		g.num(1, "Channel")
		g.reserved(1)
		dataBody(g)
		f.join(g)
		msg.Close(f.offset(), "")
	}
}

func scheduleID(f *fields) { f.num(4, "Transmit schedule ID") }

func scheduleReplace(f *fields) {
	f.num(4, "Schedule ID")
	f.num(1, "Message index")
	f.reserved(3)
	dataBody(f)
}

var dataModeBits = []struct {
	mask       uint64
	set, clear string
}{
	{0x80, "Transmitted message", "Not transmitted"},
	{0x40, "Received message", "Not received"},
	{0x20, "Local message", "Not local"},
	{0x10, "Remote message", "Not remote"},
	{0x01, "Internal message", "Not internal"},
}

// dataBody decodes a vehicle bus message: a 16 octet preamble giving the
// section lengths, then header, data and extra data padded as one.
func dataBody(f *fields) {
	hdrLen := int(f.num(1, "Header length"))
	f.num(1, "Header bits")
	dataLen := int(f.num(2, "Data length"))
	extraLen := int(f.num(1, "Extra data length"))
	off := f.offset()
	mode := f.uint(1)
	if f.ok() {
		m := f.n.AddValue(off, 1, fmt.Sprintf("Mode: %#02x", mode), mode)
		g := f.under(m)
		for _, b := range dataModeBits {
			g.flag(off, 1, mode, b.mask, b.set, b.clear)
		}
	}
	f.num(1, "Priority")
	f.num(1, "Error status")
	f.timestamp("Timestamp")
	f.num(1, "Context")
	f.reserved(3)
	if !f.ok() {
		return
	}

	start := f.offset()
	f.hex(hdrLen, "Header")
	f.hex(dataLen, "Data")
	f.hex(extraLen, "Extra data")
	if f.ok() && hdrLen+dataLen > 0 && f.st != nil {
		f.st.handoffs = append(f.st.handoffs, tree.Handoff{
			Protocol: ProtoBus,
			Selector: int(f.st.channel),
			Offset:   start,
			Length:   hdrLen + dataLen,
		})
	}
	f.pad(hdrLen + dataLen + extraLen)
}

// eventBody decodes an event frame.
func eventBody(f *fields) {
	f.num(1, "Event ID")
	f.num(1, "Event context")
	f.reserved(2)
	f.timestamp("Timestamp")
	if f.remaining() > 0 {
		n := f.remaining()
		f.hex(n, "Data")
	}
}

var blmModeNames = map[uint64]string{
	0: "Off",
	1: "Average over time",
	2: "Average over frame count",
}

func blmMode(f *fields) {
	mode := f.named(1, "Mode", blmModeNames)
	f.reserved(3)
	switch mode {
	case 1:
		f.num(4, "Averaging period (milliseconds)")
	case 2:
		f.num(4, "Averaging period (frames)")
	default:
		f.reserved(4)
	}
}

// percent adds a bus load given in hundredths of a percent.
func (f *fields) percent(label string) {
	off := f.offset()
	v := f.uint(2)
	if f.ok() {
		f.n.AddValue(off, 2, fmt.Sprintf("%s: %d.%02d%%", label, v/100, v%100), v)
	}
}

func blmData(f *fields) {
	f.timestamp("Timestamp")
	f.percent("Bus load average since last get")
	f.percent("Current bus load")
	f.percent("Peak bus load")
	f.percent("Historic peak bus load")
}

func blmStats(f *fields) {
	f.num(4, "Receive frame count")
	f.num(4, "Transmit frame count")
	f.num(4, "Receive dropped frame count")
	f.num(4, "Transmit dropped frame count")
	f.num(4, "Receive error count")
	f.num(4, "Transmit error count")
}

var responderActionNames = map[uint64]string{
	0: "Send response(s) for each conforming message",
	1: "Send response(s) after period",
	2: "Ignore conforming messages during period",
}

// msgRespAdd decodes a message responder: flags, its filter blocks and
// the messages sent when they match.
func msgRespAdd(f *fields) {
	off := f.offset()
	flags := f.uint(1)
	if f.ok() {
		f.flag(off, 1, flags, 0x02, "Active", "Inactive")
	}
	blocks := int(f.num(1, "Number of filter blocks"))
	responses := int(f.num(1, "Number of response blocks"))
	f.num(1, "Old handle")
	off = f.offset()
	action := f.uint(1)
	if f.ok() {
		name := responderActionNames[action&0x07]
		if name == "" {
			name = "Unknown"
		}
		f.n.AddValue(off, 1, "Action: "+name, action)
		f.flag(off, 1, action, 0x80, "Deactivate on event", "Stay active on event")
	}
	f.reserved(1)
	f.num(2, "Action value")
	filterBlocks(f, blocks)
	for i := 0; i < responses && f.ok() && f.remaining() > 0; i++ {
		start := f.offset()
		msg := f.n.Add(start, 0, fmt.Sprintf("Response block %d", i+1))
		g := f.under(msg)
		if g.remaining() < HeaderLength {
			f.octets(HeaderLength)
			break
		}
		hdr := g.n.Add(g.offset(), HeaderLength, "Message header")
		h := g.under(hdr)
		h.num(1, "Source")
		h.num(1, "Source channel")
		h.num(1, "Destination")
		h.num(1, "Destination channel")
		h.num(2, "Data length")
		h.num(1, "Frame type")
		h.reserved(1)
		g.join(h)
		dataBody(g)
		f.join(g)
		msg.Close(f.offset(), "")
	}
}

func pgmDesc(f *fields) {
	f.num(4, "Program size")
	f.str(32, "Program name")
	f.str(80, "Program description")
}

func pgmDescResp(f *fields) {
	off := f.offset()
	flags := f.uint(1)
	if f.ok() {
		f.flag(off, 1, flags, 0x01, "The program is already present", "The program is not present")
	}
	f.num(1, "Handle")
	f.reserved(2)
}

func pgmUpload(f *fields) {
	f.num(2, "Block number")
	f.num(1, "Handle")
	f.reserved(1)
	n := f.remaining()
	f.hex(n, "Data")
}

func pgmName(f *fields) { f.str(32, "Program name") }

func pgmListReq(f *fields) {
	f.num(1, "Block number")
	f.reserved(3)
}

func pgmList(f *fields) {
	count := int(f.num(1, "Number of programs in this response"))
	f.reserved(1)
	f.num(2, "Number of remaining programs")
	for i := 0; i < count && f.ok(); i++ {
		if f.remaining() < 112 {
			f.octets(112)
			break
		}
		p := f.n.Add(f.offset(), 112, fmt.Sprintf("Program %d", i+1))
		g := f.under(p)
		g.str(32, "Name")
		g.str(80, "Description")
		f.join(g)
	}
}

func pgmStart(f *fields) {
	f.num(1, "Handle")
	f.reserved(3)
	if f.remaining() > 0 {
		f.str(f.remaining(), "Arguments")
	}
}

func pgmPID(f *fields) {
	f.num(1, "PID")
	f.reserved(3)
}

func pgmStatus(f *fields) {
	count := int(f.num(1, "Number of running copies"))
	f.reserved(3)
	for i := 0; i < count && f.ok(); i++ {
		f.num(1, "PID")
	}
}

func pgmOptions(f *fields) {
	f.num(1, "Handle")
	f.reserved(3)
	for i := 1; f.ok() && f.remaining() >= 2; i++ {
		off := f.offset()
		typ := f.uint(1)
		l := int(f.uint(1))
		v := f.octets(l)
		if f.ok() {
			f.n.AddValue(off, 2+l, fmt.Sprintf("Option %d: type %d, value %x", i, typ, v), v)
		}
	}
}

var fileGroupNames = map[uint64]string{
	0: "First group of names",
	1: "Subsequent group of names",
}

func pgmFilesReq(f *fields) {
	f.named(1, "Group", fileGroupNames)
	if f.remaining() > 0 {
		f.str(f.remaining(), "Directory")
	}
}

func pgmFiles(f *fields) {
	off := f.offset()
	more := f.uint(1)
	if f.ok() {
		f.flag(off, 1, more, 0x01, "More names follow", "No more names")
	}
	for f.ok() && f.remaining() > 0 {
		off := f.offset()
		b := f.c.Buffer()[off:f.c.End()]
		n := len(b)
		for i, c := range b {
			if c == 0 {
				n = i + 1
				break
			}
		}
		name := cstring(f.octets(n))
		if name != "" {
			f.n.AddValue(off, n, "File: "+name, name)
		}
	}
}

var usdtActionNames = map[uint64]string{
	0: "Unregister",
	1: "Register",
}

func usdtRegister(f *fields) {
	f.named(1, "Action", usdtActionNames)
	off := f.offset()
	flags := f.uint(1)
	if f.ok() {
		fl := f.n.AddValue(off, 1, fmt.Sprintf("Transport flags: %#02x", flags), flags)
		g := f.under(fl)
		g.flag(off, 1, flags, 0x01, "Echo long transmit messages", "Do not echo long transmit messages")
		g.flag(off, 1, flags, 0x02, "Pass UUDT messages", "Do not pass UUDT messages")
	}
	f.reserved(2)
	for i := 1; f.ok() && f.remaining() >= 16; i++ {
		blk := f.n.Add(f.offset(), 16, fmt.Sprintf("ID block %d", i))
		g := f.under(blk)
		g.num(4, "Number of IDs in block")
		g.hex(4, "USDT request ID")
		g.hex(4, "USDT response ID")
		g.hex(4, "UUDT response ID")
		f.join(g)
	}
}

// ioBits shows a digital I/O bit mask, one line per bit.
func ioBits(f *fields) {
	off := f.offset()
	v := f.uint(1)
	if !f.ok() {
		return
	}
	n := f.n.AddValue(off, 1, fmt.Sprintf("Bits: %#02x", v), v)
	g := f.under(n)
	for i := 0; i < 8; i++ {
		m := uint64(1) << uint(i)
		g.flag(off, 1, v, m, fmt.Sprintf("Bit %d is set", i), fmt.Sprintf("Bit %d is clear", i))
	}
	f.reserved(3)
}

func initStrategy(f *fields) {
	for i := 1; f.ok() && f.remaining() >= 8; i++ {
		e := f.n.Add(f.offset(), 8, fmt.Sprintf("Entry %d", i))
		g := f.under(e)
		g.named(4, "IOCTL", ioctlNames)
		g.num(4, "Value")
		f.join(g)
	}
}
