// seehuhn.de/go/colorimetry - colour science computations in Go
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package spectrum

// CIE1931 is the CIE 1931 2° standard observer, tabulated from 380 nm to
// 780 nm in steps of 5 nm.
var CIE1931 = mustObserver("CIE 1931 2°", cie1931Table, 699)

// IlluminantD65 is the relative spectral power distribution of CIE standard
// illuminant D65, tabulated from 380 nm to 780 nm in steps of 10 nm.
var IlluminantD65 = Spectrum{
	{380, 49.9755}, {390, 54.6482}, {400, 82.7549}, {410, 91.486}, {420, 93.4318},
	{430, 86.6823}, {440, 104.865}, {450, 117.008}, {460, 117.812}, {470, 114.861},
	{480, 115.923}, {490, 108.811}, {500, 109.354}, {510, 107.802}, {520, 104.79},
	{530, 107.689}, {540, 104.405}, {550, 104.046}, {560, 100.0}, {570, 96.3342},
	{580, 95.788}, {590, 88.6856}, {600, 90.0062}, {610, 89.5991}, {620, 87.6987},
	{630, 83.2886}, {640, 83.6992}, {650, 80.0268}, {660, 80.2146}, {670, 82.2778},
	{680, 78.2842}, {690, 69.7213}, {700, 71.6091}, {710, 74.349}, {720, 61.604},
	{730, 69.8856}, {740, 75.087}, {750, 63.5927}, {760, 46.4182}, {770, 66.8054},
	{780, 63.3828},
}

func mustObserver(name string, table []CMF, cutoff float64) *Observer {
	o, err := NewObserver(name, table, cutoff)
	if err != nil {
		panic(err)
	}
	return o
}

var cie1931Table = []CMF{
	{380, 0.001368, 3.9e-05, 0.00645},
	{385, 0.002236, 6.4e-05, 0.01055},
	{390, 0.004243, 0.00012, 0.02005},
	{395, 0.00765, 0.000217, 0.03621},
	{400, 0.01431, 0.000396, 0.06785},
	{405, 0.02319, 0.00064, 0.1102},
	{410, 0.04351, 0.00121, 0.2074},
	{415, 0.07763, 0.00218, 0.3713},
	{420, 0.13438, 0.004, 0.6456},
	{425, 0.21477, 0.0073, 1.03905},
	{430, 0.2839, 0.0116, 1.3856},
	{435, 0.3285, 0.01684, 1.62296},
	{440, 0.34828, 0.023, 1.74706},
	{445, 0.34806, 0.0298, 1.7826},
	{450, 0.3362, 0.038, 1.77211},
	{455, 0.3187, 0.048, 1.7441},
	{460, 0.2908, 0.06, 1.6692},
	{465, 0.2511, 0.0739, 1.5281},
	{470, 0.19536, 0.09098, 1.28764},
	{475, 0.1421, 0.1126, 1.0419},
	{480, 0.09564, 0.13902, 0.81295},
	{485, 0.05795, 0.1693, 0.6162},
	{490, 0.03201, 0.20802, 0.46518},
	{495, 0.0147, 0.2586, 0.3533},
	{500, 0.0049, 0.323, 0.272},
	{505, 0.0024, 0.4073, 0.2123},
	{510, 0.0093, 0.503, 0.1582},
	{515, 0.0291, 0.6082, 0.1117},
	{520, 0.06327, 0.71, 0.07825},
	{525, 0.1096, 0.7932, 0.05725},
	{530, 0.1655, 0.862, 0.04216},
	{535, 0.22575, 0.91485, 0.02984},
	{540, 0.2904, 0.954, 0.0203},
	{545, 0.3597, 0.9803, 0.0134},
	{550, 0.43345, 0.99495, 0.00875},
	{555, 0.51205, 1.0, 0.00575},
	{560, 0.5945, 0.995, 0.0039},
	{565, 0.6784, 0.9786, 0.00275},
	{570, 0.7621, 0.952, 0.0021},
	{575, 0.8425, 0.9154, 0.0018},
	{580, 0.9163, 0.87, 0.00165},
	{585, 0.9786, 0.8163, 0.0014},
	{590, 1.0263, 0.757, 0.0011},
	{595, 1.0567, 0.6949, 0.001},
	{600, 1.0622, 0.631, 0.0008},
	{605, 1.0456, 0.5668, 0.0006},
	{610, 1.0026, 0.503, 0.00034},
	{615, 0.9384, 0.4412, 0.00024},
	{620, 0.85445, 0.381, 0.00019},
	{625, 0.7514, 0.321, 0.0001},
	{630, 0.6424, 0.265, 5e-05},
	{635, 0.5419, 0.217, 3e-05},
	{640, 0.4479, 0.175, 2e-05},
	{645, 0.3608, 0.1382, 1e-05},
	{650, 0.2835, 0.107, 0},
	{655, 0.2187, 0.0816, 0},
	{660, 0.1649, 0.061, 0},
	{665, 0.1212, 0.04458, 0},
	{670, 0.0874, 0.032, 0},
	{675, 0.0636, 0.0232, 0},
	{680, 0.04677, 0.017, 0},
	{685, 0.0329, 0.01192, 0},
	{690, 0.0227, 0.00821, 0},
	{695, 0.01584, 0.005723, 0},
	{700, 0.011359, 0.004102, 0},
	{705, 0.008111, 0.002929, 0},
	{710, 0.00579, 0.002091, 0},
	{715, 0.004109, 0.001484, 0},
	{720, 0.002899, 0.001047, 0},
	{725, 0.002049, 0.00074, 0},
	{730, 0.00144, 0.00052, 0},
	{735, 0.001, 0.000361, 0},
	{740, 0.00069, 0.000249, 0},
	{745, 0.000476, 0.000172, 0},
	{750, 0.000332, 0.00012, 0},
	{755, 0.000235, 8.5e-05, 0},
	{760, 0.000166, 6e-05, 0},
	{765, 0.000117, 4.2e-05, 0},
	{770, 8.3e-05, 3e-05, 0},
	{775, 5.9e-05, 2.1e-05, 0},
	{780, 4.2e-05, 1.5e-05, 0},
}
