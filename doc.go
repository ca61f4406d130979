/*
OREGON21 encodes and decodes Oregon Scientific v2.1 weather sensor frames
(THGR810, THGN123N, THWR288A) as Flipper Zero SubGhz RAW pulse files.

Encoding builds the hex frame for a reading, expands it into wire-order bits,
differentially codes the bits into short and long symbols and writes the
resulting pulse durations. Decoding reverses each of those steps and prints
the recovered frame for inspection.

Command-line Flags:

	-mode=encode

Selects the pipeline, encode or decode. Defaults to encode.

	-sensor=THGR810
	-id=""

Sensor model to impersonate. The model's identity code is looked up in the
built-in list, extended by -sensors. An explicit -id of four hex digits takes
precedence over the model.

	-channel=1
	-temp=22.8
	-humidity=56

The reading to encode. Channel must be 1-9, temperature -99.9 to 99.9 and
humidity 0-99, anything else is rejected before a frame is built.

	-out="output.sub"

File the encoded pulses are written to.

	-short=544
	-long=1040

Transmitted duration of each symbol in microseconds.

	-frequency=433920000
	-preset="FuriHalSubGhzPresetOok650Async"

Written to the file header.

	-in=""

SubGhz RAW file to decode. Every RAW_Data line is read in order. A file
without RAW_Data lines yields no result.

	-shortmin=200
	-shortmax=850
	-longmin=850
	-longmax=1400

Inclusive magnitude bands used to classify captured pulses. Where the bands
meet the long band wins, so a pulse of exactly 850us is long.

	-strict=false

Pulses outside both bands are normally discarded. With -strict every such
pulse is reported and decoding fails.

	-sensors=""

YAML catalog of additional sensor models:

	sensors:
	  - name: THGR810
	    id: F824

	-plot=""

Render the pulse train as an image. The format is taken from the file
extension: png, svg or pdf.

	-format="plain"

Result output format: plain, csv, json or xml.

	-list=false

List known sensor models and exit.

	-v=false

Log intermediate pipeline stages: frame, bitstream and symbols.

Any flag may also be set through the environment as OREGON21_<FLAG>, for
example OREGON21_STRICT=true.
*/
package main
