// Package stream provides the XML event model shared by the parser and the
// serializer.
//
// A [Source] is a forward only cursor of events with one event of
// lookahead. [Decoder] is the Source reading XML text; [SliceSource] replays
// events held in memory. A [Sink] receives events: [Encoder] writes XML
// text and [Recorder] keeps the events.
//
// # Example: Decoding
//
//	dec := stream.NewDecoder(reader)
//	ev, _ := dec.Next() // EventStartElement score
//	ev, _ = dec.Peek()  // next event, not consumed
//
// # Example: Encoding
//
//	enc := stream.NewEncoder(writer, stream.WithIndent(2), stream.WithHeader())
//	enc.WriteEvent(&stream.Event{Type: stream.EventStartElement, Name: dom.Local("score")})
//	enc.WriteEvent(&stream.Event{Type: stream.EventEndElement, Name: dom.Local("score")})
//	enc.Close()
//
// # Charsets
//
// The decoder reads any charset registered with IANA that
// golang.org/x/text supports, as declared by the document's XML
// declaration. Many BMML files are ISO-8859-1.
package stream
