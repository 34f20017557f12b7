// SPDX-License-Identifier: MIT

// Package xmlbif reads Bayesian networks in the XMLBIF interchange format.
//
// A document looks like:
//
//	<BIF VERSION="0.3">
//	<NETWORK>
//	  <NAME>sprinkler</NAME>
//	  <VARIABLE TYPE="nature">
//	    <NAME>Cloudy</NAME>
//	    <OUTCOME>true</OUTCOME>
//	    <OUTCOME>false</OUTCOME>
//	  </VARIABLE>
//	  <DEFINITION>
//	    <FOR>Rain</FOR>
//	    <GIVEN>Cloudy</GIVEN>
//	    <TABLE>0.8 0.2 0.2 0.8</TABLE>
//	  </DEFINITION>
//	</NETWORK>
//	</BIF>
//
// The format places no order on VARIABLE and DEFINITION elements, so a Reader
// registers every variable first and then ingests the definitions in document
// order. PROBABILITY is accepted as an older spelling of DEFINITION.
//
// TABLE lists numbers in counting order over the GIVEN variables first and the
// FOR variable last, the last dimension changing fastest (ingest.VariableLast).
//
// Documents declaring a non UTF-8 encoding are decoded through
// golang.org/x/net/html/charset.
package xmlbif
